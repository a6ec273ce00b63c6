package types

import (
	"fmt"
	"time"
)

// SeatTypePrice maps one seat type to its price for a showtime.
type SeatTypePrice struct {
	SeatType SeatType `json:"seat_type"`
	Price    float64  `json:"price"`
}

// Showtime is one screening of a movie on a screen. ShowDate is
// "2006-01-02" and ShowTime "15:04:05", as the API sends them.
type Showtime struct {
	ID       int             `json:"showtime_id"`
	MovieID  int             `json:"movie_id"`
	ScreenID int             `json:"screen_id"`
	ShowDate string          `json:"show_date"`
	ShowTime string          `json:"show_time"`
	Prices   []SeatTypePrice `json:"seat_type_prices,omitempty"`

	// Joined display fields, present on filtered/detail responses.
	MovieTitle string `json:"movie_title,omitempty"`
	CinemaName string `json:"cinema_name,omitempty"`
	ScreenName string `json:"screen_name,omitempty"`
}

// StartTime combines ShowDate and ShowTime into a single local time.
func (s Showtime) StartTime() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s.ShowDate+" "+s.ShowTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid showtime %q %q: %w", s.ShowDate, s.ShowTime, err)
	}
	return t, nil
}

// PriceFor returns the price for a seat type, or 0 when the showtime's
// price table has no entry for it.
func (s Showtime) PriceFor(st SeatType) float64 {
	for _, p := range s.Prices {
		if p.SeatType == st {
			return p.Price
		}
	}
	return 0
}
