package services

import (
	"context"
	"fmt"

	"github.com/cinedesk/v2/internal/types"
)

// ScreenService handles screen (auditorium) reads and the seat
// inventory of a screen.
type ScreenService struct {
	api *ApiClient
}

// NewScreenService creates a new instance of ScreenService.
func NewScreenService(api *ApiClient) *ScreenService {
	return &ScreenService{api: api}
}

// Get fetches one screen by id.
func (s *ScreenService) Get(ctx context.Context, id int) (*types.Screen, error) {
	var screen types.Screen
	if err := s.api.Get(ctx, fmt.Sprintf("/api/screens/%d", id), &screen); err != nil {
		return nil, fmt.Errorf("failed to fetch screen %d: %w", id, err)
	}
	return &screen, nil
}

// ListByCinema fetches all screens of a cinema.
func (s *ScreenService) ListByCinema(ctx context.Context, cinemaID int) ([]types.Screen, error) {
	var screens []types.Screen
	endpoint := fmt.Sprintf("/api/screens?cinema_id=%d", cinemaID)
	if err := s.api.Get(ctx, endpoint, &screens); err != nil {
		return nil, fmt.Errorf("failed to fetch screens for cinema %d: %w", cinemaID, err)
	}
	return screens, nil
}

// Seats fetches the full seat inventory of a screen.
func (s *ScreenService) Seats(ctx context.Context, screenID int) ([]types.Seat, error) {
	var seats []types.Seat
	endpoint := fmt.Sprintf("/api/screens/%d/seats", screenID)
	if err := s.api.Get(ctx, endpoint, &seats); err != nil {
		return nil, fmt.Errorf("failed to fetch seats for screen %d: %w", screenID, err)
	}
	return seats, nil
}
