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

// CampgroundRepository handles Postgres operations for campgrounds
type CampgroundRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// Ensure CampgroundRepository implements CampgroundRepositoryInterface
var _ CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a new campground repository
func NewCampgroundRepository(db *gorm.DB, timeout time.Duration) *CampgroundRepository {
	return &CampgroundRepository{db: db, timeout: timeout}
}

// Create inserts a new campground
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if campground.ReviewIDs == nil {
		campground.ReviewIDs = []string{}
	}
	return r.db.WithContext(ctx).Create(campground).Error
}

// GetByID retrieves a campground by its UUID
func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var campground models.Campground
	if err := r.db.WithContext(ctx).First(&campground, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, err
	}
	return &campground, nil
}

// GetAll retrieves all campgrounds, newest first
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var campgrounds []models.Campground
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&campgrounds).Error; err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// Update replaces the editable fields of an existing campground. The review
// list is left untouched.
func (r *CampgroundRepository) Update(ctx context.Context, campground *models.Campground) error {
	if _, err := uuid.Parse(campground.ID); err != nil {
		return apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Campground{}).
		Where("id = ?", campground.ID).
		Select("title", "location", "description", "price", "image", "updated_at").
		Updates(map[string]interface{}{
			"title":       campground.Title,
			"location":    campground.Location,
			"description": campground.Description,
			"price":       campground.Price,
			"image":       campground.Image,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// Delete removes a campground by ID. Its reviews are not touched.
func (r *CampgroundRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Campground{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// DeleteAll removes every campground and returns how many were deleted
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Campground{})
	return res.RowsAffected, res.Error
}

// AddReview appends reviewID to the jsonb review list in one statement
func (r *CampgroundRepository) AddReview(ctx context.Context, campgroundID, reviewID string) error {
	if _, err := uuid.Parse(campgroundID); err != nil {
		return apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Campground{}).
		Where("id = ?", campgroundID).
		Updates(map[string]interface{}{
			"review_ids": gorm.Expr("review_ids || jsonb_build_array(?::text)", reviewID),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// RemoveReview pulls every occurrence of reviewID from the review list
func (r *CampgroundRepository) RemoveReview(ctx context.Context, campgroundID, reviewID string) (bool, error) {
	if _, err := uuid.Parse(campgroundID); err != nil {
		return false, apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	res := db.Model(&models.Campground{}).
		Where("id = ? AND review_ids @> jsonb_build_array(?::text)", campgroundID, reviewID).
		Updates(map[string]interface{}{
			"review_ids": gorm.Expr("review_ids - ?::text", reviewID),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Nothing pulled: tell an unknown campground apart from an absent reference
	var count int64
	if err := db.Model(&models.Campground{}).Where("id = ?", campgroundID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, apperrors.ErrCampgroundNotFound
	}
	return false, nil
}
