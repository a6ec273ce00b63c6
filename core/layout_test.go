package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedesk/v2/internal/types"
)

func planSeat(id int, label string, st types.SeatType, pos types.SeatPosition, price float64) PlanSeat {
	return PlanSeat{
		Seat:   types.Seat{ID: id, Label: label, Type: st, Position: pos},
		Status: types.SeatAvailable,
		Price:  price,
	}
}

func TestBuildLayout_TypeDisplayOrder(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "R1", types.SeatRecliner, types.PositionFull, 30),
		planSeat(2, "A1", types.SeatClassic, types.PositionFull, 10),
		planSeat(3, "P1", types.SeatPrimePlus, types.PositionFull, 20),
		planSeat(4, "B1", types.SeatPrime, types.PositionFull, 15),
	}

	var b LayoutBuilder
	sections := b.Build(seats)

	require.Len(t, sections, 4)
	assert.Equal(t, types.SeatClassic, sections[0].Type)
	assert.Equal(t, types.SeatPrime, sections[1].Type)
	assert.Equal(t, types.SeatPrimePlus, sections[2].Type)
	assert.Equal(t, types.SeatRecliner, sections[3].Type)
	assert.Equal(t, 10.0, sections[0].Price)
}

func TestBuildLayout_UnknownTypeKeptAfterKnown(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "X1", types.SeatType("BALCONY"), types.PositionFull, 50),
		planSeat(2, "A1", types.SeatClassic, types.PositionFull, 10),
	}

	var b LayoutBuilder
	sections := b.Build(seats)

	require.Len(t, sections, 2)
	assert.Equal(t, types.SeatClassic, sections[0].Type)
	assert.Equal(t, types.SeatType("BALCONY"), sections[1].Type)
}

func TestBuildLayout_NumericSuffixOrdering(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "A10", types.SeatClassic, types.PositionFull, 10),
		planSeat(2, "A2", types.SeatClassic, types.PositionFull, 10),
		planSeat(3, "A1", types.SeatClassic, types.PositionFull, 10),
	}

	var b LayoutBuilder
	sections := b.Build(seats)

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Rows, 1)
	row := sections[0].Rows[0]
	require.Len(t, row.Full, 3)
	assert.Equal(t, "A1", row.Full[0].Label)
	assert.Equal(t, "A2", row.Full[1].Label)
	assert.Equal(t, "A10", row.Full[2].Label)
}

func TestBuildLayout_RowFromLabelAndSorting(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "B1", types.SeatClassic, types.PositionFull, 10),
		planSeat(2, "A1", types.SeatClassic, types.PositionFull, 10),
	}

	var b LayoutBuilder
	sections := b.Build(seats)

	require.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "A", sections[0].Rows[0].Row)
	assert.Equal(t, "B", sections[0].Rows[1].Row)
}

func TestBuildLayout_PositionBlocks(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "A1", types.SeatClassic, types.PositionLeft, 10),
		planSeat(2, "A2", types.SeatClassic, types.PositionMiddle, 10),
		planSeat(3, "A3", types.SeatClassic, types.PositionRight, 10),
		planSeat(4, "B1", types.SeatClassic, "", 10),
	}

	var b LayoutBuilder
	sections := b.Build(seats)
	rows := sections[0].Rows
	require.Len(t, rows, 2)

	assert.False(t, rows[0].Centered())
	assert.Len(t, rows[0].Left, 1)
	assert.Len(t, rows[0].Middle, 1)
	assert.Len(t, rows[0].Right, 1)

	// Missing position defaults to full, which renders centered.
	assert.True(t, rows[1].Centered())
	assert.Len(t, rows[1].Full, 1)
}

// Grouping an already grouped-and-flattened list must reproduce the
// same structure.
func TestBuildLayout_Idempotent(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "A2", types.SeatClassic, types.PositionLeft, 10),
		planSeat(2, "A1", types.SeatClassic, types.PositionLeft, 10),
		planSeat(3, "B1", types.SeatPrime, types.PositionFull, 15),
		planSeat(4, "C3", types.SeatRecliner, types.PositionRight, 30),
	}

	var b1 LayoutBuilder
	first := b1.Build(seats)

	var flattened []PlanSeat
	for _, section := range first {
		for _, row := range section.Rows {
			flattened = append(flattened, row.Left...)
			flattened = append(flattened, row.Middle...)
			flattened = append(flattened, row.Right...)
			flattened = append(flattened, row.Full...)
		}
	}

	var b2 LayoutBuilder
	second := b2.Build(flattened)
	assert.Equal(t, first, second)
}

func TestBuildLayout_MemoizedBySliceIdentity(t *testing.T) {
	seats := []PlanSeat{
		planSeat(1, "A1", types.SeatClassic, types.PositionFull, 10),
	}

	var b LayoutBuilder
	first := b.Build(seats)
	second := b.Build(seats)
	require.Len(t, first, 1)
	// Same backing array in the cached result means no rebuild happened.
	assert.Same(t, &first[0], &second[0])
}
