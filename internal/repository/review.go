package repository

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository handles Postgres operations for reviews
type ReviewRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// Ensure ReviewRepository implements ReviewRepositoryInterface
var _ ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB, timeout time.Duration) *ReviewRepository {
	return &ReviewRepository{db: db, timeout: timeout}
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

// GetByID retrieves a review by its UUID
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrReviewNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// GetByIDs retrieves the reviews matching ids, ordered like ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Review, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []models.Review{}, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return orderReviews(ids, reviews), nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrReviewNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// DeleteAll removes every review and returns how many were deleted
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Review{})
	return res.RowsAffected, res.Error
}
