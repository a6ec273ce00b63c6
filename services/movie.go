package services

import (
	"context"
	"fmt"

	"github.com/cinedesk/v2/internal/types"
)

// MovieService handles movie catalog reads. All routes are public.
type MovieService struct {
	api *ApiClient
}

// NewMovieService creates a new instance of MovieService.
func NewMovieService(api *ApiClient) *MovieService {
	return &MovieService{api: api}
}

// NowPlaying fetches currently screening movies.
func (s *MovieService) NowPlaying(ctx context.Context) ([]types.Movie, error) {
	var movies []types.Movie
	if err := s.api.Get(ctx, "/api/movies/now-playing", &movies); err != nil {
		return nil, fmt.Errorf("failed to fetch now-playing movies: %w", err)
	}
	return movies, nil
}

// Upcoming fetches movies with a future release date.
func (s *MovieService) Upcoming(ctx context.Context) ([]types.Movie, error) {
	var movies []types.Movie
	if err := s.api.Get(ctx, "/api/movies/upcoming", &movies); err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming movies: %w", err)
	}
	return movies, nil
}

// Get fetches one movie by id.
func (s *MovieService) Get(ctx context.Context, id int) (*types.Movie, error) {
	var movie types.Movie
	if err := s.api.Get(ctx, fmt.Sprintf("/api/movies/%d", id), &movie); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}
	return &movie, nil
}
