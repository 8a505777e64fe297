package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
)

// ReviewService keeps reviews and the review lists of their campgrounds in step
type ReviewService struct {
	campgrounds repository.CampgroundRepositoryInterface
	reviews     repository.ReviewRepositoryInterface
	validator   *Validator
}

// Ensure ReviewService implements ReviewServiceInterface
var _ ReviewServiceInterface = (*ReviewService)(nil)

// NewReviewService creates a new ReviewService
func NewReviewService(campgrounds repository.CampgroundRepositoryInterface, reviews repository.ReviewRepositoryInterface, validator *Validator) *ReviewService {
	return &ReviewService{
		campgrounds: campgrounds,
		reviews:     reviews,
		validator:   validator,
	}
}

// ReviewInput is the payload of the review form
type ReviewInput struct {
	Rating *Rating `form:"review[rating]" validate:"required,number,min=1,max=5"`
	Body   string  `form:"review[body]" validate:"required"`
}

// Rating is a whole star count bound from the review form
type Rating int

// invalidRating marks form input that is not a whole number
const invalidRating = Rating(math.MinInt)

// UnmarshalParam implements binding.BindUnmarshaler
func (r *Rating) UnmarshalParam(param string) error {
	v, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		*r = invalidRating
		return nil
	}
	*r = Rating(v)
	return nil
}

// ReviewResponse is a review as shown on the campground page
type ReviewResponse struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// AddReview stores a review and appends it to the campground's list. The two
// writes are not transactional: if the append fails the new review is
// deleted again.
func (s *ReviewService) AddReview(ctx context.Context, campgroundID string, input *ReviewInput) (*ReviewResponse, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.campgrounds.GetByID(ctx, campgroundID); err != nil {
		return nil, err
	}

	review := &models.Review{Body: input.Body, Rating: int(*input.Rating)}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.campgrounds.AddReview(ctx, campgroundID, review.ID); err != nil {
		log := logger.WithContext(ctx).WithFields(map[string]interface{}{
			"campground_id": campgroundID,
			"review_id":     review.ID,
		})
		// the request may already be cancelled; compensate regardless
		if cerr := s.reviews.Delete(context.WithoutCancel(ctx), review.ID); cerr != nil {
			log.WithError(cerr).Error("orphaned review: compensation delete failed")
		} else {
			log.WithError(err).Warn("review append failed, review removed")
		}
		return nil, fmt.Errorf("failed to attach review to campground %s: %w", campgroundID, err)
	}

	resp := toReviewResponse(review)
	return &resp, nil
}

// DeleteReview pulls the reference from the campground and deletes the review.
// A review the campground does not list is left alone so that its owner keeps
// a valid reference. If the pull fails the delete still runs for a review the
// campground listed; the first error is returned.
func (s *ReviewService) DeleteReview(ctx context.Context, campgroundID, reviewID string) error {
	campground, err := s.campgrounds.GetByID(ctx, campgroundID)
	if err != nil {
		return err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campground_id": campgroundID,
		"review_id":     reviewID,
	})

	var firstErr error
	removed, err := s.campgrounds.RemoveReview(ctx, campgroundID, reviewID)
	switch {
	case err != nil:
		log.WithError(err).Error("failed to remove review reference")
		firstErr = fmt.Errorf("failed to remove review %s from campground %s: %w", reviewID, campgroundID, err)
		if !campground.HasReview(reviewID) {
			return firstErr
		}
	case !removed:
		return apperrors.ErrReviewNotFound
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			log.Warn("review already deleted, dangling reference")
		} else {
			log.WithError(err).Error("failed to delete review")
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to delete review %s: %w", reviewID, err)
			}
		}
	}

	return firstErr
}

func toReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}
