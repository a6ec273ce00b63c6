package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedesk/v2/internal/types"
)

func availableSeat(id int, label string, price float64) PlanSeat {
	return PlanSeat{
		Seat:   types.Seat{ID: id, Label: label, Type: types.SeatClassic},
		Status: types.SeatAvailable,
		Price:  price,
	}
}

func reservedSeat(id int, label string) PlanSeat {
	s := availableSeat(id, label, 10)
	s.Status = types.SeatReserved
	return s
}

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection()
	seat := availableSeat(1, "A1", 10)

	require.NoError(t, sel.Toggle(seat))
	assert.True(t, sel.Contains(1))
	assert.Equal(t, 1, sel.Len())

	// Toggling again returns the selection to its prior state.
	require.NoError(t, sel.Toggle(seat))
	assert.False(t, sel.Contains(1))
	assert.Equal(t, 0, sel.Len())
}

func TestSelection_ReservedSeatNeverEnters(t *testing.T) {
	sel := NewSelection()
	seat := reservedSeat(7, "C7")

	for i := 0; i < 5; i++ {
		err := sel.Toggle(seat)
		assert.ErrorIs(t, err, ErrSeatReserved)
	}
	assert.Equal(t, 0, sel.Len())
}

func TestSelection_CapAtTenSeats(t *testing.T) {
	sel := NewSelection()
	for i := 1; i <= MaxSeatsPerBooking; i++ {
		require.NoError(t, sel.Toggle(availableSeat(i, fmt.Sprintf("A%d", i), 10)))
	}
	require.Equal(t, MaxSeatsPerBooking, sel.Len())

	err := sel.Toggle(availableSeat(11, "B1", 10))
	assert.ErrorIs(t, err, ErrSelectionFull)
	assert.Equal(t, MaxSeatsPerBooking, sel.Len())
	assert.False(t, sel.Contains(11))
}

func TestSelection_BoundsHoldUnderAnySequence(t *testing.T) {
	sel := NewSelection()
	seats := make([]PlanSeat, 0, 15)
	for i := 1; i <= 15; i++ {
		seats = append(seats, availableSeat(i, fmt.Sprintf("A%d", i), 10))
	}

	// Hammer toggles in a fixed pseudo-random pattern.
	for step := 0; step < 200; step++ {
		_ = sel.Toggle(seats[(step*7)%len(seats)])
		assert.GreaterOrEqual(t, sel.Len(), 0)
		assert.LessOrEqual(t, sel.Len(), MaxSeatsPerBooking)
	}
}

func TestSelection_OrderPreserved(t *testing.T) {
	sel := NewSelection()
	require.NoError(t, sel.Toggle(availableSeat(3, "A3", 10)))
	require.NoError(t, sel.Toggle(availableSeat(1, "A1", 10)))
	require.NoError(t, sel.Toggle(availableSeat(2, "A2", 10)))

	assert.Equal(t, []int{3, 1, 2}, sel.IDs())
}

func TestTotalPrice(t *testing.T) {
	seats := []PlanSeat{
		availableSeat(1, "A1", 10),
		availableSeat(2, "A2", 10),
		availableSeat(3, "B1", 15),
	}

	sel := NewSelection()
	require.NoError(t, sel.Toggle(seats[0]))
	require.NoError(t, sel.Toggle(seats[2]))

	assert.Equal(t, 25.0, TotalPrice(sel, seats))
	assert.Equal(t, []int{1, 3}, sel.IDs())

	// Repricing one seat type changes only that seat's contribution.
	seats[2].Price = 20
	assert.Equal(t, 30.0, TotalPrice(sel, seats))
}

func TestTotalPrice_MissingPriceContributesZero(t *testing.T) {
	seats := []PlanSeat{
		availableSeat(1, "A1", 10),
		availableSeat(2, "Z1", 0),
	}
	sel := NewSelection()
	require.NoError(t, sel.Toggle(seats[0]))
	require.NoError(t, sel.Toggle(seats[1]))

	assert.Equal(t, 10.0, TotalPrice(sel, seats))
}

func TestSelectedLabels(t *testing.T) {
	seats := []PlanSeat{
		availableSeat(1, "A1", 10),
		availableSeat(2, "B5", 15),
	}
	sel := NewSelection()
	require.NoError(t, sel.Toggle(seats[1]))
	require.NoError(t, sel.Toggle(seats[0]))

	assert.Equal(t, []string{"B5", "A1"}, SelectedLabels(sel, seats))
}

func TestSelection_RemoveDropsOnlyThatSeat(t *testing.T) {
	sel := NewSelection()
	require.NoError(t, sel.Toggle(availableSeat(1, "A1", 10)))
	require.NoError(t, sel.Toggle(availableSeat(2, "A2", 10)))
	require.NoError(t, sel.Toggle(availableSeat(3, "A3", 10)))

	assert.True(t, sel.Remove(2))
	assert.Equal(t, []int{1, 3}, sel.IDs())

	// Removing an unselected seat is a no-op, so a refresh that finds
	// newly reserved seats can remove unconditionally.
	assert.False(t, sel.Remove(2))
	assert.False(t, sel.Remove(99))
	assert.Equal(t, []int{1, 3}, sel.IDs())
}

func TestSelection_Clear(t *testing.T) {
	sel := NewSelection()
	require.NoError(t, sel.Toggle(availableSeat(1, "A1", 10)))
	sel.Clear()
	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.IDs())
}
