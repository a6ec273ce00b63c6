package types

// SeatType is the comfort class of a seat. The display order on the
// seat map is fixed: CLASSIC, PRIME, PRIME_PLUS, RECLINER.
type SeatType string

const (
	SeatClassic   SeatType = "CLASSIC"
	SeatPrime     SeatType = "PRIME"
	SeatPrimePlus SeatType = "PRIME_PLUS"
	SeatRecliner  SeatType = "RECLINER"
)

// SeatTypeOrder lists the seat types in their fixed display order.
// Types not in this list still carry data but have no reserved slot
// in the layout.
var SeatTypeOrder = []SeatType{SeatClassic, SeatPrime, SeatPrimePlus, SeatRecliner}

// SeatPosition is the horizontal block a seat belongs to within its
// row. Seats without a position default to PositionFull.
type SeatPosition string

const (
	PositionLeft   SeatPosition = "left"
	PositionMiddle SeatPosition = "middle"
	PositionRight  SeatPosition = "right"
	PositionFull   SeatPosition = "full"
)

// SeatStatus is derived, never stored: a seat is reserved when its id
// appears in the showtime's booked set, otherwise available.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
)

// Seat describes one physical seat on a screen. Immutable once loaded.
type Seat struct {
	ID       int          `json:"seat_id"`
	Label    string       `json:"seat_label"`
	Row      string       `json:"row_char,omitempty"`
	Number   int          `json:"seat_number,omitempty"`
	Type     SeatType     `json:"seat_type"`
	Position SeatPosition `json:"position,omitempty"`
	ScreenID int          `json:"screen_id"`
}

// BookedSeat identifies one seat already taken for a showtime.
type BookedSeat struct {
	SeatID int `json:"seat_id"`
}
