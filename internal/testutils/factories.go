package testutils

import (
	"fmt"
	"time"

	"yelpcamp/internal/database/models"
)

// CampgroundFactory provides methods to create test Campground data
type CampgroundFactory struct {
	seq int
}

// NewCampgroundFactory creates a new CampgroundFactory
func NewCampgroundFactory() *CampgroundFactory {
	return &CampgroundFactory{}
}

// Create creates a test Campground with default values and no id, ready to
// be handed to a repository
func (f *CampgroundFactory) Create() *models.Campground {
	f.seq++
	return &models.Campground{
		Title:       fmt.Sprintf("Test Campground %d", f.seq),
		Location:    "Yosemite, CA",
		Description: "A quiet spot by the river",
		Price:       19.99,
		Image:       "https://images.example.com/camp.jpg",
		ReviewIDs:   []string{},
	}
}

// WithID creates a Campground that looks already persisted
func (f *CampgroundFactory) WithID(id string, reviewIDs ...string) *models.Campground {
	c := f.Create()
	c.ID = id
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	if reviewIDs != nil {
		c.ReviewIDs = reviewIDs
	}
	return c
}

// WithTitle sets a custom title for the campground
func (f *CampgroundFactory) WithTitle(title string) *models.Campground {
	c := f.Create()
	c.Title = title
	return c
}

// ReviewFactory provides methods to create test Review data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test Review with default values
func (f *ReviewFactory) Create() *models.Review {
	return &models.Review{
		Body:   "Great views, noisy neighbours",
		Rating: 4,
	}
}

// WithID creates a Review that looks already persisted
func (f *ReviewFactory) WithID(id string, rating int) *models.Review {
	r := f.Create()
	r.ID = id
	r.Rating = rating
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	return r
}
