package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedesk/v2/internal/types"
)

type fakeShowtimeSource struct {
	showtime  *types.Showtime
	booked    []int
	getErr    error
	bookedErr error
}

func (f *fakeShowtimeSource) Get(ctx context.Context, id int) (*types.Showtime, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.showtime, nil
}

func (f *fakeShowtimeSource) BookedSeatIDs(ctx context.Context, showtimeID int) ([]int, error) {
	if f.bookedErr != nil {
		return nil, f.bookedErr
	}
	return f.booked, nil
}

type fakeScreenSource struct {
	screen   *types.Screen
	seats    []types.Seat
	getErr   error
	seatsErr error
}

func (f *fakeScreenSource) Get(ctx context.Context, id int) (*types.Screen, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.screen, nil
}

func (f *fakeScreenSource) Seats(ctx context.Context, screenID int) ([]types.Seat, error) {
	if f.seatsErr != nil {
		return nil, f.seatsErr
	}
	return f.seats, nil
}

func fixtureSources() (*fakeShowtimeSource, *fakeScreenSource) {
	showtimes := &fakeShowtimeSource{
		showtime: &types.Showtime{
			ID:       42,
			ScreenID: 7,
			ShowDate: "2026-09-01",
			ShowTime: "18:30:00",
			Prices: []types.SeatTypePrice{
				{SeatType: types.SeatClassic, Price: 10},
				{SeatType: types.SeatPrime, Price: 15},
			},
		},
	}
	screens := &fakeScreenSource{
		screen: &types.Screen{ID: 7, CinemaID: 3, Name: "Screen 2"},
		seats: []types.Seat{
			{ID: 1, Label: "A1", Type: types.SeatClassic, ScreenID: 7},
			{ID: 2, Label: "A2", Type: types.SeatClassic, ScreenID: 7},
			{ID: 3, Label: "B1", Type: types.SeatPrime, ScreenID: 7},
		},
	}
	return showtimes, screens
}

func TestSeatPlanLoader_JoinsStatusAndPrice(t *testing.T) {
	showtimes, screens := fixtureSources()
	showtimes.booked = []int{2}

	plan, err := NewSeatPlanLoader(showtimes, screens).Load(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, plan.Seats, 3)
	assert.Equal(t, types.SeatAvailable, plan.Seats[0].Status)
	assert.Equal(t, types.SeatReserved, plan.Seats[1].Status)
	assert.Equal(t, 10.0, plan.Seats[0].Price)
	assert.Equal(t, 15.0, plan.Seats[2].Price)
	assert.Equal(t, "Screen 2", plan.Screen.Name)
}

func TestSeatPlanLoader_MissingPriceEntryYieldsZero(t *testing.T) {
	showtimes, screens := fixtureSources()
	screens.seats = append(screens.seats, types.Seat{ID: 9, Label: "R1", Type: types.SeatRecliner, ScreenID: 7})

	plan, err := NewSeatPlanLoader(showtimes, screens).Load(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.Seats[3].Price)
}

func TestSeatPlanLoader_AnyFailureAbortsWholeLoad(t *testing.T) {
	boom := errors.New("upstream down")

	cases := map[string]func(*fakeShowtimeSource, *fakeScreenSource){
		"showtime fetch": func(st *fakeShowtimeSource, sc *fakeScreenSource) { st.getErr = boom },
		"screen fetch":   func(st *fakeShowtimeSource, sc *fakeScreenSource) { sc.getErr = boom },
		"seat fetch":     func(st *fakeShowtimeSource, sc *fakeScreenSource) { sc.seatsErr = boom },
		"booked fetch":   func(st *fakeShowtimeSource, sc *fakeScreenSource) { st.bookedErr = boom },
	}
	for name, breakIt := range cases {
		t.Run(name, func(t *testing.T) {
			showtimes, screens := fixtureSources()
			breakIt(showtimes, screens)

			plan, err := NewSeatPlanLoader(showtimes, screens).Load(context.Background(), 42)
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), "failed to load seat selection")
		})
	}
}

// End-to-end over the engine: pick A1 and B1, total $25, then a reload
// with both booked shows them reserved.
func TestSeatPlan_SelectionScenario(t *testing.T) {
	showtimes, screens := fixtureSources()
	loader := NewSeatPlanLoader(showtimes, screens)

	plan, err := loader.Load(context.Background(), 42)
	require.NoError(t, err)

	sel := NewSelection()
	require.NoError(t, sel.Toggle(plan.Seats[0]))
	require.NoError(t, sel.Toggle(plan.Seats[2]))
	assert.Equal(t, 25.0, TotalPrice(sel, plan.Seats))
	assert.Equal(t, []int{1, 3}, sel.IDs())

	// The booking went through; the server now reports both seats taken.
	showtimes.booked = []int{1, 3}
	reloaded, err := loader.Load(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, types.SeatReserved, reloaded.Seats[0].Status)
	assert.Equal(t, types.SeatReserved, reloaded.Seats[2].Status)
}
