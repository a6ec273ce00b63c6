package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/internal/types"
)

// showMovieDetail opens a window with the movie's info and its
// showtimes, filterable by cinema and date. Picking a showtime opens
// the seat-selection window.
func showMovieDetail(deps *Deps, main *MainWindowUI, movie types.Movie) {
	win := deps.App.NewWindow(movie.Title)
	win.Resize(fyne.NewSize(560, 520))

	info := widget.NewLabel(movieSubtitle(movie))
	desc := widget.NewLabel(movie.Description)
	desc.Wrapping = fyne.TextWrapWord

	var (
		cinemas     []types.Cinema
		cinemaID    int
		date        = time.Now().Format("2006-01-02")
		showtimes   []types.Showtime
		gen         int
		showtimeBox = container.NewVBox()
	)
	status := widget.NewLabel("Loading showtimes...")

	renderShowtimes := func() {
		showtimeBox.RemoveAll()
		for i := range showtimes {
			st := showtimes[i]
			label := fmt.Sprintf("%s · %s · %s", st.ShowTime, st.CinemaName, st.ScreenName)
			showtimeBox.Add(widget.NewButton(label, func() {
				NewSeatWindow(deps, main, st.ID).Show()
			}))
		}
		if len(showtimes) == 0 {
			showtimeBox.Add(widget.NewLabel("No showtimes for this selection."))
		}
		showtimeBox.Refresh()
	}

	loadShowtimes := func() {
		gen++
		g := gen
		status.SetText("Loading showtimes...")
		go func() {
			result, err := deps.Showtimes.Filter(context.Background(), movie.ID, cinemaID, date)
			fyne.Do(func() {
				if g != gen {
					return
				}
				if err != nil {
					log.Printf("Error loading showtimes: %v", err)
					status.SetText("Failed to load showtimes: " + err.Error())
					showtimes = nil
					renderShowtimes()
					return
				}
				showtimes = result
				status.SetText(fmt.Sprintf("%d showtimes on %s", len(showtimes), date))
				renderShowtimes()
			})
		}()
	}

	cinemaSelect := widget.NewSelect([]string{"All cinemas"}, nil)
	cinemaSelect.OnChanged = func(name string) {
		cinemaID = 0
		for _, c := range cinemas {
			if c.Name == name {
				cinemaID = c.ID
				break
			}
		}
		loadShowtimes()
	}
	cinemaSelect.SetSelected("All cinemas")

	dateEntry := widget.NewEntry()
	dateEntry.SetText(date)
	dateEntry.OnSubmitted = func(d string) {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			status.SetText("Date must be YYYY-MM-DD.")
			return
		}
		date = d
		loadShowtimes()
	}

	go func() {
		list, err := deps.Cinemas.List(context.Background(), "")
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error loading cinema filter options: %v", err)
				return
			}
			cinemas = list
			options := make([]string, 0, len(list)+1)
			options = append(options, "All cinemas")
			for _, c := range list {
				options = append(options, c.Name)
			}
			cinemaSelect.Options = options
			cinemaSelect.Refresh()
		})
	}()

	filterBar := container.NewGridWithColumns(2, cinemaSelect, dateEntry)
	content := container.NewBorder(
		container.NewVBox(info, desc, filterBar, status),
		nil, nil, nil,
		container.NewVScroll(showtimeBox),
	)
	win.SetContent(content)

	loadShowtimes()
	win.Show()
}
