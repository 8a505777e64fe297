package models

// Campground is the primary listing entity. ReviewIDs is the ordered list of
// forward references to Review documents owned by this campground.
type Campground struct {
	BaseModel
	Title       string   `json:"title" gorm:"size:200;not null"`
	Location    string   `json:"location" gorm:"size:200;not null"`
	Description string   `json:"description" gorm:"type:text;not null"`
	Price       float64  `json:"price" gorm:"not null"`
	Image       string   `json:"image" gorm:"size:1000;not null"`
	ReviewIDs   []string `json:"review_ids" gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
}

// TableName returns the table name for Campground
func (Campground) TableName() string {
	return "campgrounds"
}

// HasReview reports whether reviewID is referenced by the campground
func (c *Campground) HasReview(reviewID string) bool {
	for _, id := range c.ReviewIDs {
		if id == reviewID {
			return true
		}
	}
	return false
}
