package core

import (
	"context"
	"fmt"

	"github.com/cinedesk/v2/internal/types"
)

// ShowtimeSource is the slice of the showtime API the loader needs.
type ShowtimeSource interface {
	Get(ctx context.Context, id int) (*types.Showtime, error)
	BookedSeatIDs(ctx context.Context, showtimeID int) ([]int, error)
}

// ScreenSource is the slice of the screen API the loader needs.
type ScreenSource interface {
	Get(ctx context.Context, id int) (*types.Screen, error)
	Seats(ctx context.Context, screenID int) ([]types.Seat, error)
}

// PlanSeat is a seat annotated with its derived status and its price
// under the showtime's price table.
type PlanSeat struct {
	types.Seat
	Status types.SeatStatus
	Price  float64
}

// SeatPlan is everything the seat-selection page renders: the showtime,
// its screen, and every seat with status and price resolved.
type SeatPlan struct {
	Showtime types.Showtime
	Screen   types.Screen
	Seats    []PlanSeat
}

// SeatPlanLoader joins showtime, screen, seat inventory and the booked
// set into a SeatPlan. Pure read; no side effects.
type SeatPlanLoader struct {
	showtimes ShowtimeSource
	screens   ScreenSource
}

// NewSeatPlanLoader creates a loader over the given sources.
func NewSeatPlanLoader(showtimes ShowtimeSource, screens ScreenSource) *SeatPlanLoader {
	return &SeatPlanLoader{showtimes: showtimes, screens: screens}
}

// Load builds the seat plan for one showtime. Any upstream failure
// aborts the whole load; a partial plan is never returned.
func (l *SeatPlanLoader) Load(ctx context.Context, showtimeID int) (*SeatPlan, error) {
	showtime, err := l.showtimes.Get(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat selection: %w", err)
	}

	screen, err := l.screens.Get(ctx, showtime.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat selection: %w", err)
	}

	seats, err := l.screens.Seats(ctx, showtime.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat selection: %w", err)
	}

	bookedIDs, err := l.showtimes.BookedSeatIDs(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat selection: %w", err)
	}
	booked := make(map[int]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	plan := &SeatPlan{
		Showtime: *showtime,
		Screen:   *screen,
		Seats:    make([]PlanSeat, 0, len(seats)),
	}
	for _, seat := range seats {
		status := types.SeatAvailable
		if booked[seat.ID] {
			status = types.SeatReserved
		}
		plan.Seats = append(plan.Seats, PlanSeat{
			Seat:   seat,
			Status: status,
			Price:  showtime.PriceFor(seat.Type),
		})
	}
	return plan, nil
}
