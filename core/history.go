package core

import (
	"errors"
	"strings"
	"time"

	"github.com/cinedesk/v2/internal/types"
)

// CancellationCutoff is how long before the screening a booking can
// still be cancelled.
const CancellationCutoff = time.Hour

// ErrBookingNotCancellable rejects a cancellation client-side, before
// any network call, when the booking is outside the window or already
// cancelled.
var ErrBookingNotCancellable = errors.New("bookings can only be cancelled up to 1 hour before showtime")

// Cancellable reports whether a booking may still be cancelled at the
// given instant: status Booked and more than the cutoff before start.
// Bookings whose showtime cannot be parsed are not cancellable.
func Cancellable(b types.Booking, now time.Time) bool {
	if b.Status != types.BookingBooked {
		return false
	}
	st, ok := b.ShowtimeStart()
	if !ok {
		return false
	}
	start, err := st.StartTime()
	if err != nil {
		return false
	}
	return start.Sub(now) > CancellationCutoff
}

// HistoryFilter narrows the booking history. Zero values match all.
type HistoryFilter struct {
	Status types.BookingStatus
	Query  string
}

// FilterBookings applies the filter as a pure predicate over the
// already-fetched set. The free-text query matches case-insensitively
// across movie title, cinema, seat labels and show date.
func FilterBookings(bookings []types.Booking, f HistoryFilter) []types.Booking {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	var out []types.Booking
	for _, b := range bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if query != "" && !matchesQuery(b, query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesQuery(b types.Booking, query string) bool {
	haystacks := []string{
		b.MovieTitle,
		b.CinemaName,
		strings.Join(b.SeatLabels, " "),
		b.ShowDate,
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}

// Paginate slices one page out of the filtered set. Page indexes start
// at 0; out-of-range pages yield an empty slice.
func Paginate(bookings []types.Booking, page, pageSize int) []types.Booking {
	if pageSize <= 0 || page < 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(bookings) {
		return nil
	}
	end := start + pageSize
	if end > len(bookings) {
		end = len(bookings)
	}
	return bookings[start:end]
}

// PageCount returns how many pages the filtered set spans.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
