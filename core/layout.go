package core

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cinedesk/v2/internal/types"
)

// LayoutRow is one physical row of the seat map. Seats live either in
// Full (the row spans the screen) or in the Left/Middle/Right blocks.
type LayoutRow struct {
	Row    string
	Full   []PlanSeat
	Left   []PlanSeat
	Middle []PlanSeat
	Right  []PlanSeat
}

// Centered reports whether the row renders as a single centered block,
// which is the case when only Full seats are present.
func (r LayoutRow) Centered() bool {
	return len(r.Left) == 0 && len(r.Middle) == 0 && len(r.Right) == 0
}

// SeatSection groups the rows of one seat type, in display order.
type SeatSection struct {
	Type  types.SeatType
	Price float64
	Rows  []LayoutRow
}

// LayoutBuilder turns a flat seat list into the render hierarchy
// seat type -> position -> row -> ordered seats. The result is purely
// derived from the input and cached by slice identity, so rebuilding
// the same plan costs nothing.
type LayoutBuilder struct {
	mu        sync.Mutex
	lastSeats []PlanSeat
	lastBuilt []SeatSection
}

// Build groups and orders seats for rendering.
func (b *LayoutBuilder) Build(seats []PlanSeat) []SeatSection {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sameSlice(b.lastSeats, seats) {
		return b.lastBuilt
	}
	built := buildLayout(seats)
	b.lastSeats = seats
	b.lastBuilt = built
	return built
}

func sameSlice(a, b []PlanSeat) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

func buildLayout(seats []PlanSeat) []SeatSection {
	byType := make(map[types.SeatType][]PlanSeat)
	var typeOrder []types.SeatType
	for _, seat := range seats {
		if _, seen := byType[seat.Type]; !seen {
			typeOrder = append(typeOrder, seat.Type)
		}
		byType[seat.Type] = append(byType[seat.Type], seat)
	}

	// Known types come out in their fixed display order; anything the
	// server sends beyond that is kept, appended in first-seen order.
	ordered := make([]types.SeatType, 0, len(typeOrder))
	for _, t := range types.SeatTypeOrder {
		if _, ok := byType[t]; ok {
			ordered = append(ordered, t)
		}
	}
	for _, t := range typeOrder {
		if !isKnownType(t) {
			ordered = append(ordered, t)
		}
	}

	sections := make([]SeatSection, 0, len(ordered))
	for _, t := range ordered {
		group := byType[t]
		section := SeatSection{Type: t, Rows: buildRows(group)}
		if len(group) > 0 {
			section.Price = group[0].Price
		}
		sections = append(sections, section)
	}
	return sections
}

func isKnownType(t types.SeatType) bool {
	for _, known := range types.SeatTypeOrder {
		if t == known {
			return true
		}
	}
	return false
}

func buildRows(seats []PlanSeat) []LayoutRow {
	byRow := make(map[string]*LayoutRow)
	var rowOrder []string
	for _, seat := range seats {
		row := rowChar(seat)
		lr, ok := byRow[row]
		if !ok {
			lr = &LayoutRow{Row: row}
			byRow[row] = lr
			rowOrder = append(rowOrder, row)
		}
		switch position(seat) {
		case types.PositionLeft:
			lr.Left = append(lr.Left, seat)
		case types.PositionMiddle:
			lr.Middle = append(lr.Middle, seat)
		case types.PositionRight:
			lr.Right = append(lr.Right, seat)
		default:
			lr.Full = append(lr.Full, seat)
		}
	}

	sort.Strings(rowOrder)
	rows := make([]LayoutRow, 0, len(rowOrder))
	for _, row := range rowOrder {
		lr := byRow[row]
		sortByNumber(lr.Full)
		sortByNumber(lr.Left)
		sortByNumber(lr.Middle)
		sortByNumber(lr.Right)
		rows = append(rows, *lr)
	}
	return rows
}

// rowChar prefers the explicit row field and falls back to the leading
// character of the seat label ("A12" -> "A").
func rowChar(seat PlanSeat) string {
	if seat.Row != "" {
		return seat.Row
	}
	if seat.Label != "" {
		return strings.ToUpper(seat.Label[:1])
	}
	return ""
}

func position(seat PlanSeat) types.SeatPosition {
	switch seat.Position {
	case types.PositionLeft, types.PositionMiddle, types.PositionRight:
		return seat.Position
	default:
		return types.PositionFull
	}
}

// sortByNumber orders seats within a row by the numeric suffix of the
// label ("A2" before "A10"), falling back to the label itself.
func sortByNumber(seats []PlanSeat) {
	sort.SliceStable(seats, func(i, j int) bool {
		ni, iok := numericSuffix(seats[i].Label)
		nj, jok := numericSuffix(seats[j].Label)
		if iok && jok && ni != nj {
			return ni < nj
		}
		if iok != jok {
			return iok
		}
		return seats[i].Label < seats[j].Label
	})
}

func numericSuffix(label string) (int, bool) {
	i := len(label)
	for i > 0 && label[i-1] >= '0' && label[i-1] <= '9' {
		i--
	}
	if i == len(label) {
		return 0, false
	}
	n, err := strconv.Atoi(label[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
