package models

// Review is a rated comment. It carries no back-pointer to its campground.
type Review struct {
	BaseModel
	Body   string `json:"body" gorm:"type:text;not null"`
	Rating int    `json:"rating" gorm:"not null"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}
