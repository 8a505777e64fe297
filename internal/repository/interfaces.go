package repository

import (
	"context"

	"yelpcamp/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CampgroundRepositoryInterface defines the store contract for campgrounds.
// Lookups by an unknown or malformed id return errors.ErrCampgroundNotFound.
type CampgroundRepositoryInterface interface {
	Create(ctx context.Context, campground *models.Campground) error
	GetByID(ctx context.Context, id string) (*models.Campground, error)
	GetAll(ctx context.Context) ([]models.Campground, error)
	Update(ctx context.Context, campground *models.Campground) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	// AddReview appends reviewID to the campground's review list in a single write.
	AddReview(ctx context.Context, campgroundID, reviewID string) error
	// RemoveReview pulls reviewID from the campground's review list and
	// reports whether a reference was actually removed.
	RemoveReview(ctx context.Context, campgroundID, reviewID string) (bool, error)
}

// ReviewRepositoryInterface defines the store contract for reviews.
// Lookups by an unknown or malformed id return errors.ErrReviewNotFound.
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// GetByIDs returns the reviews that exist, in the order of ids.
	GetByIDs(ctx context.Context, ids []string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
