package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CampgroundServiceInterface defines the interface for campground service
type CampgroundServiceInterface interface {
	ListCampgrounds(ctx context.Context) ([]CampgroundResponse, error)
	GetCampground(ctx context.Context, id string) (*CampgroundResponse, error)
	GetCampgroundDetail(ctx context.Context, id string) (*CampgroundDetailResponse, error)
	CreateCampground(ctx context.Context, input *CampgroundInput) (*CampgroundResponse, error)
	UpdateCampground(ctx context.Context, id string, input *CampgroundInput) (*CampgroundResponse, error)
	DeleteCampground(ctx context.Context, id string) error
}

// ReviewServiceInterface defines the interface for review service
type ReviewServiceInterface interface {
	AddReview(ctx context.Context, campgroundID string, input *ReviewInput) (*ReviewResponse, error)
	DeleteReview(ctx context.Context, campgroundID, reviewID string) error
}
