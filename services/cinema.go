package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/cinedesk/v2/internal/types"
)

// CinemaService handles cinema listings and their reviews. Reads are
// public; posting a review requires a session.
type CinemaService struct {
	api      *ApiClient
	validate *validator.Validate
}

// NewCinemaService creates a new instance of CinemaService.
func NewCinemaService(api *ApiClient) *CinemaService {
	return &CinemaService{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List fetches cinemas, optionally restricted to one city.
func (s *CinemaService) List(ctx context.Context, city string) ([]types.Cinema, error) {
	endpoint := "/api/cinemas"
	if city != "" {
		endpoint += "?city=" + url.QueryEscape(city)
	}
	var cinemas []types.Cinema
	if err := s.api.Get(ctx, endpoint, &cinemas); err != nil {
		return nil, fmt.Errorf("failed to fetch cinemas: %w", err)
	}
	return cinemas, nil
}

// Get fetches one cinema by id.
func (s *CinemaService) Get(ctx context.Context, id int) (*types.Cinema, error) {
	var cinema types.Cinema
	if err := s.api.Get(ctx, fmt.Sprintf("/api/cinemas/%d", id), &cinema); err != nil {
		return nil, fmt.Errorf("failed to fetch cinema %d: %w", id, err)
	}
	return &cinema, nil
}

// Reviews fetches the reviews for a cinema.
func (s *CinemaService) Reviews(ctx context.Context, cinemaID int) ([]types.Review, error) {
	var reviews []types.Review
	if err := s.api.Get(ctx, fmt.Sprintf("/api/cinemas/%d/reviews", cinemaID), &reviews); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for cinema %d: %w", cinemaID, err)
	}
	return reviews, nil
}

// AddReview posts a review on a cinema for the current user.
func (s *CinemaService) AddReview(ctx context.Context, review types.Review) (*types.Review, error) {
	if err := s.validate.Struct(review); err != nil {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	var created types.Review
	endpoint := fmt.Sprintf("/api/cinemas/%d/reviews", review.CinemaID)
	if err := s.api.Post(ctx, endpoint, review, &created); err != nil {
		return nil, fmt.Errorf("failed to post review: %w", err)
	}
	return &created, nil
}
