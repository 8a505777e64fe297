package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
)

// CampgroundService provides campground-related business logic
type CampgroundService struct {
	campgrounds repository.CampgroundRepositoryInterface
	reviews     repository.ReviewRepositoryInterface
	validator   *Validator
}

// Ensure CampgroundService implements CampgroundServiceInterface
var _ CampgroundServiceInterface = (*CampgroundService)(nil)

// NewCampgroundService creates a new CampgroundService
func NewCampgroundService(campgrounds repository.CampgroundRepositoryInterface, reviews repository.ReviewRepositoryInterface, validator *Validator) *CampgroundService {
	return &CampgroundService{
		campgrounds: campgrounds,
		reviews:     reviews,
		validator:   validator,
	}
}

// CampgroundInput is the payload of the new and edit campground forms
type CampgroundInput struct {
	Title       string `form:"campground[title]" validate:"required"`
	Location    string `form:"campground[location]" validate:"required"`
	Price       *Price `form:"campground[price]" validate:"required,number,min=0"`
	Image       string `form:"campground[image]" validate:"required"`
	Description string `form:"campground[description]" validate:"required"`
}

// Price is a form number. Gin would read a blank field as zero, so blank and
// non-numeric input bind as NaN and fail the "number" rule instead.
type Price float64

// UnmarshalParam implements binding.BindUnmarshaler
func (p *Price) UnmarshalParam(param string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
	if err != nil || math.IsInf(v, 0) {
		v = math.NaN()
	}
	*p = Price(v)
	return nil
}

// CampgroundResponse is a campground as shown by the views
type CampgroundResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CampgroundDetailResponse is a campground with its reviews populated
type CampgroundDetailResponse struct {
	CampgroundResponse
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}

// ListCampgrounds returns every campground, newest first
func (s *CampgroundService) ListCampgrounds(ctx context.Context) ([]CampgroundResponse, error) {
	campgrounds, err := s.campgrounds.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campgrounds: %w", err)
	}

	responses := make([]CampgroundResponse, len(campgrounds))
	for i := range campgrounds {
		responses[i] = toCampgroundResponse(&campgrounds[i])
	}
	return responses, nil
}

// GetCampground returns a single campground without its reviews
func (s *CampgroundService) GetCampground(ctx context.Context, id string) (*CampgroundResponse, error) {
	campground, err := s.campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toCampgroundResponse(campground)
	return &resp, nil
}

// GetCampgroundDetail returns a campground with its reviews in list order.
// References to reviews that no longer exist are skipped.
func (s *CampgroundService) GetCampgroundDetail(ctx context.Context, id string) (*CampgroundDetailResponse, error) {
	campground, err := s.campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CampgroundDetailResponse{
		CampgroundResponse: toCampgroundResponse(campground),
		Reviews:            []ReviewResponse{},
	}
	if len(campground.ReviewIDs) == 0 {
		return detail, nil
	}

	reviews, err := s.reviews.GetByIDs(ctx, campground.ReviewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews of campground %s: %w", id, err)
	}
	if missing := len(campground.ReviewIDs) - len(reviews); missing > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"campground_id": id,
			"missing":       missing,
		}).Warn("campground references reviews that do not exist")
	}

	total := 0
	for i := range reviews {
		detail.Reviews = append(detail.Reviews, toReviewResponse(&reviews[i]))
		total += reviews[i].Rating
	}
	if len(reviews) > 0 {
		detail.AverageRating = float64(total) / float64(len(reviews))
	}
	return detail, nil
}

// CreateCampground validates input and stores a campground with no reviews
func (s *CampgroundService) CreateCampground(ctx context.Context, input *CampgroundInput) (*CampgroundResponse, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	campground := &models.Campground{ReviewIDs: []string{}}
	applyCampgroundInput(campground, input)

	if err := s.campgrounds.Create(ctx, campground); err != nil {
		return nil, fmt.Errorf("failed to create campground: %w", err)
	}

	logger.WithContext(ctx).WithField("campground_id", campground.ID).Info("campground created")
	resp := toCampgroundResponse(campground)
	return &resp, nil
}

// UpdateCampground replaces every editable field of an existing campground
func (s *CampgroundService) UpdateCampground(ctx context.Context, id string, input *CampgroundInput) (*CampgroundResponse, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	campground, err := s.campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCampgroundInput(campground, input)
	if err := s.campgrounds.Update(ctx, campground); err != nil {
		return nil, fmt.Errorf("failed to update campground %s: %w", id, err)
	}

	resp := toCampgroundResponse(campground)
	return &resp, nil
}

// DeleteCampground removes a campground. Its reviews stay in the store.
func (s *CampgroundService) DeleteCampground(ctx context.Context, id string) error {
	if err := s.campgrounds.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete campground %s: %w", id, err)
	}

	logger.WithContext(ctx).WithField("campground_id", id).Info("campground deleted")
	return nil
}

func applyCampgroundInput(campground *models.Campground, input *CampgroundInput) {
	campground.Title = input.Title
	campground.Location = input.Location
	campground.Description = input.Description
	campground.Image = input.Image
	if input.Price != nil {
		campground.Price = float64(*input.Price)
	}
}

func toCampgroundResponse(c *models.Campground) CampgroundResponse {
	return CampgroundResponse{
		ID:          c.ID,
		Title:       c.Title,
		Location:    c.Location,
		Description: c.Description,
		Price:       c.Price,
		Image:       c.Image,
		ReviewCount: len(c.ReviewIDs),
		CreatedAt:   c.CreatedAt,
	}
}
