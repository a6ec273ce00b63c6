package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cinedesk/v2/internal/types"
)

func bookingAt(start time.Time, status types.BookingStatus) types.Booking {
	return types.Booking{
		ID:       1,
		Status:   status,
		ShowDate: start.Format("2006-01-02"),
		ShowTime: start.Format("15:04:05"),
	}
}

func TestCancellable_OutsideWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	b := bookingAt(now.Add(2*time.Hour), types.BookingBooked)
	assert.True(t, Cancellable(b, now))
}

func TestCancellable_InsideWindowRejected(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	// Showtime 30 minutes away: no cancellation, no network call needed.
	b := bookingAt(now.Add(30*time.Minute), types.BookingBooked)
	assert.False(t, Cancellable(b, now))
}

func TestCancellable_ExactlyOneHourRejected(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	b := bookingAt(now.Add(time.Hour), types.BookingBooked)
	assert.False(t, Cancellable(b, now))
}

func TestCancellable_CancelledOrUnparseable(t *testing.T) {
	now := time.Now()

	cancelled := bookingAt(now.Add(5*time.Hour), types.BookingCancelled)
	assert.False(t, Cancellable(cancelled, now))

	broken := types.Booking{Status: types.BookingBooked, ShowDate: "someday", ShowTime: "soon"}
	assert.False(t, Cancellable(broken, now))

	missing := types.Booking{Status: types.BookingBooked}
	assert.False(t, Cancellable(missing, now))
}

func historyFixture() []types.Booking {
	return []types.Booking{
		{ID: 1, Status: types.BookingBooked, MovieTitle: "Dune", CinemaName: "Galaxy Central", SeatLabels: []string{"A1", "A2"}, ShowDate: "2026-09-01"},
		{ID: 2, Status: types.BookingCancelled, MovieTitle: "Dune", CinemaName: "Riverside", SeatLabels: []string{"B4"}, ShowDate: "2026-09-02"},
		{ID: 3, Status: types.BookingBooked, MovieTitle: "Oppenheimer", CinemaName: "Galaxy Central", SeatLabels: []string{"C1"}, ShowDate: "2026-09-03"},
	}
}

func TestFilterBookings_ByStatus(t *testing.T) {
	out := FilterBookings(historyFixture(), HistoryFilter{Status: types.BookingBooked})
	assert.Len(t, out, 2)
	for _, b := range out {
		assert.Equal(t, types.BookingBooked, b.Status)
	}
}

func TestFilterBookings_FreeTextAcrossFields(t *testing.T) {
	bookings := historyFixture()

	assert.Len(t, FilterBookings(bookings, HistoryFilter{Query: "dune"}), 2)
	assert.Len(t, FilterBookings(bookings, HistoryFilter{Query: "riverside"}), 1)
	assert.Len(t, FilterBookings(bookings, HistoryFilter{Query: "C1"}), 1)
	assert.Len(t, FilterBookings(bookings, HistoryFilter{Query: "2026-09-02"}), 1)
	assert.Empty(t, FilterBookings(bookings, HistoryFilter{Query: "nonexistent"}))
}

func TestFilterBookings_StatusAndQueryCombine(t *testing.T) {
	out := FilterBookings(historyFixture(), HistoryFilter{Status: types.BookingBooked, Query: "dune"})
	assert.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}

func TestPaginate(t *testing.T) {
	bookings := historyFixture()

	page0 := Paginate(bookings, 0, 2)
	assert.Len(t, page0, 2)
	assert.Equal(t, 1, page0[0].ID)

	page1 := Paginate(bookings, 1, 2)
	assert.Len(t, page1, 1)
	assert.Equal(t, 3, page1[0].ID)

	assert.Nil(t, Paginate(bookings, 2, 2))
	assert.Nil(t, Paginate(bookings, -1, 2))
	assert.Nil(t, Paginate(bookings, 0, 0))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 8))
	assert.Equal(t, 1, PageCount(8, 8))
	assert.Equal(t, 2, PageCount(9, 8))
	assert.Equal(t, 0, PageCount(5, 0))
}
