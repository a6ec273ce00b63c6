package core

import (
	"errors"

	"github.com/cinedesk/v2/internal/types"
)

// MaxSeatsPerBooking caps how many seats one booking may hold.
const MaxSeatsPerBooking = 10

var (
	// ErrSeatReserved rejects a click on a seat somebody already booked.
	ErrSeatReserved = errors.New("seat is already booked")
	// ErrSelectionFull rejects an 11th seat.
	ErrSelectionFull = errors.New("maximum 10 seats allowed per booking")
)

// Selection is the ordered set of seat ids the user has picked for the
// active showtime. It lives only in page memory: cleared on successful
// booking and discarded on navigation.
type Selection struct {
	ids []int
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle flips a seat's membership. Reserved seats are rejected before
// anything else, so a reserved seat can never enter the selection.
func (s *Selection) Toggle(seat PlanSeat) error {
	if seat.Status == types.SeatReserved {
		return ErrSeatReserved
	}
	if s.Remove(seat.ID) {
		return nil
	}
	if len(s.ids) >= MaxSeatsPerBooking {
		return ErrSelectionFull
	}
	s.ids = append(s.ids, seat.ID)
	return nil
}

// Remove drops a seat id from the selection, reporting whether it was
// present. Used directly when a refresh shows a selected seat was
// booked by someone else.
func (s *Selection) Remove(id int) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the seat id is selected.
func (s *Selection) Contains(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns the selected seat ids in selection order.
func (s *Selection) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected seats.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// TotalPrice sums the price of every selected seat against the plan's
// price-annotated seat list. Seats whose type has no price entry were
// annotated with 0 and contribute nothing.
func TotalPrice(sel *Selection, seats []PlanSeat) float64 {
	var total float64
	for _, seat := range seats {
		if sel.Contains(seat.ID) {
			total += seat.Price
		}
	}
	return total
}

// SelectedLabels returns the labels of the selected seats in selection
// order, for display and for the checkout summary.
func SelectedLabels(sel *Selection, seats []PlanSeat) []string {
	byID := make(map[int]string, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat.Label
	}
	labels := make([]string, 0, sel.Len())
	for _, id := range sel.IDs() {
		if label, ok := byID[id]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}
