package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinedesk/v2/internal/types"
)

// ErrNoSeatsSelected is returned when a checkout is attempted with an
// empty selection. No network call is made.
var ErrNoSeatsSelected = errors.New("no seats selected")

// BookingService handles booking creation, history and cancellation.
// Every route here is authenticated.
type BookingService struct {
	api *ApiClient
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(api *ApiClient) *BookingService {
	return &BookingService{api: api}
}

// Create submits a booking. idempotencyKey is generated once per
// checkout by the caller and reused on retry, so a double submit
// cannot create two bookings if the server honors the key.
func (s *BookingService) Create(ctx context.Context, req types.CreateBookingRequest, idempotencyKey string) (*types.Booking, error) {
	if len(req.SeatIDs) == 0 {
		return nil, ErrNoSeatsSelected
	}
	var booking types.Booking
	if err := s.api.PostIdempotent(ctx, "/api/bookings", idempotencyKey, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Mine fetches all bookings of the current user.
func (s *BookingService) Mine(ctx context.Context) ([]types.Booking, error) {
	var bookings []types.Booking
	if err := s.api.Get(ctx, "/api/bookings", &bookings); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// Get fetches one booking with its joined display fields.
func (s *BookingService) Get(ctx context.Context, id int) (*types.Booking, error) {
	var booking types.Booking
	if err := s.api.Get(ctx, fmt.Sprintf("/api/bookings/%d", id), &booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %d: %w", id, err)
	}
	return &booking, nil
}

// Cancel asks the server to cancel a booking. The caller is expected
// to have checked the cancellation window first; the server enforces
// it again and its message is surfaced verbatim on rejection.
func (s *BookingService) Cancel(ctx context.Context, id int) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/api/bookings/%d/cancel", id), nil, nil); err != nil {
		return err
	}
	return nil
}
