package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cinedesk/v2/internal/types"
)

// ShowtimeService handles showtime reads: detail, filtered listings
// and the booked-seat set for a screening.
type ShowtimeService struct {
	api *ApiClient
}

// NewShowtimeService creates a new instance of ShowtimeService.
func NewShowtimeService(api *ApiClient) *ShowtimeService {
	return &ShowtimeService{api: api}
}

// Get fetches one showtime by id, including its seat-type price table.
func (s *ShowtimeService) Get(ctx context.Context, id int) (*types.Showtime, error) {
	var st types.Showtime
	if err := s.api.Get(ctx, fmt.Sprintf("/api/showtimes/%d", id), &st); err != nil {
		return nil, fmt.Errorf("failed to fetch showtime %d: %w", id, err)
	}
	return &st, nil
}

// Filter fetches showtimes for a movie, optionally narrowed to one
// cinema and/or one date ("2006-01-02"). Zero/empty values are omitted.
func (s *ShowtimeService) Filter(ctx context.Context, movieID, cinemaID int, date string) ([]types.Showtime, error) {
	params := url.Values{}
	if movieID > 0 {
		params.Set("movie_id", strconv.Itoa(movieID))
	}
	if cinemaID > 0 {
		params.Set("cinema_id", strconv.Itoa(cinemaID))
	}
	if date != "" {
		params.Set("date", date)
	}

	endpoint := "/api/showtimes"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	var showtimes []types.Showtime
	if err := s.api.Get(ctx, endpoint, &showtimes); err != nil {
		return nil, fmt.Errorf("failed to fetch showtimes: %w", err)
	}
	return showtimes, nil
}

// BookedSeatIDs fetches the ids of seats already taken for a showtime.
func (s *ShowtimeService) BookedSeatIDs(ctx context.Context, showtimeID int) ([]int, error) {
	var booked []types.BookedSeat
	endpoint := fmt.Sprintf("/api/showtimes/%d/booked-seats", showtimeID)
	if err := s.api.Get(ctx, endpoint, &booked); err != nil {
		return nil, fmt.Errorf("failed to fetch booked seats for showtime %d: %w", showtimeID, err)
	}
	ids := make([]int, 0, len(booked))
	for _, b := range booked {
		ids = append(ids, b.SeatID)
	}
	return ids, nil
}
