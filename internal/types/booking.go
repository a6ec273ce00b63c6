package types

// BookingStatus is the server-side state of a booking. The client only
// ever reads it; transitions happen through create/cancel calls.
type BookingStatus string

const (
	BookingBooked    BookingStatus = "Booked"
	BookingCancelled BookingStatus = "Cancelled"
)

// CreateBookingRequest is the checkout payload.
type CreateBookingRequest struct {
	ShowtimeID    int    `json:"showtime_id"`
	SeatIDs       []int  `json:"seat_ids"`
	PaymentMethod string `json:"payment_method"`
}

// Booking is the read-only projection the client holds after the
// server creates or returns a booking. Detail responses additionally
// carry the joined movie/cinema/screen display fields.
type Booking struct {
	ID            int           `json:"booking_id"`
	ShowtimeID    int           `json:"showtime_id"`
	SeatIDs       []int         `json:"seat_ids,omitempty"`
	SeatLabels    []string      `json:"seat_labels,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Status        BookingStatus `json:"status"`
	FinalAmount   float64       `json:"final_amount"`
	CreatedAt     string        `json:"created_at,omitempty"`

	ShowDate   string `json:"show_date,omitempty"`
	ShowTime   string `json:"show_time,omitempty"`
	MovieTitle string `json:"movie_title,omitempty"`
	CinemaName string `json:"cinema_name,omitempty"`
	ScreenName string `json:"screen_name,omitempty"`
}

// ShowtimeStart returns the booking's screening start as a Showtime
// would, reusing its date/time parsing.
func (b Booking) ShowtimeStart() (Showtime, bool) {
	if b.ShowDate == "" || b.ShowTime == "" {
		return Showtime{}, false
	}
	return Showtime{ShowDate: b.ShowDate, ShowTime: b.ShowTime}, true
}

// PaymentMethods are the options offered at checkout.
var PaymentMethods = []string{"Card", "UPI", "Net Banking", "Wallet"}
