package repository

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/internal/database"
	"yelpcamp/internal/database/models"
)

// Repositories groups the repositories of one backend
type Repositories struct {
	Campgrounds CampgroundRepositoryInterface
	Reviews     ReviewRepositoryInterface
}

// New builds the repositories matching the concrete store type
func New(store database.Store, timeout time.Duration) (*Repositories, error) {
	switch s := store.(type) {
	case *database.PostgresStore:
		return &Repositories{
			Campgrounds: NewCampgroundRepository(s.DB, timeout),
			Reviews:     NewReviewRepository(s.DB, timeout),
		}, nil
	case *database.MongoStore:
		return &Repositories{
			Campgrounds: NewMongoCampgroundRepository(s.DB, timeout),
			Reviews:     NewMongoReviewRepository(s.DB, timeout),
		}, nil
	default:
		return nil, fmt.Errorf("no repositories for store %T", store)
	}
}

// withTimeout bounds a single store operation
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// orderReviews arranges reviews in the order of ids, skipping ids without a
// matching review.
func orderReviews(ids []string, reviews []models.Review) []models.Review {
	byID := make(map[string]models.Review, len(reviews))
	for _, r := range reviews {
		byID[r.ID] = r
	}

	ordered := make([]models.Review, 0, len(reviews))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
