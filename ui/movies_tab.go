package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/core"
	"github.com/cinedesk/v2/internal/types"
)

type moviesTab struct {
	deps *Deps
	main *MainWindowUI
	win  fyne.Window

	mode    string
	all     []types.Movie
	visible []types.Movie
	query   string
	gen     int

	list   *widget.List
	status *widget.Label
}

// newMoviesTab builds the movie browsing page: a now-playing/upcoming
// switch, a client-side search box and the movie list.
func newMoviesTab(deps *Deps, main *MainWindowUI, win fyne.Window) fyne.CanvasObject {
	t := &moviesTab{deps: deps, main: main, win: win, mode: "Now Playing"}

	t.status = widget.NewLabel("Loading movies...")
	t.list = widget.NewList(
		func() int { return len(t.visible) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("title")
			title.TextStyle = fyne.TextStyle{Bold: true}
			return container.NewVBox(title, widget.NewLabel("details"))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(t.visible) {
				return
			}
			m := t.visible[i]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(m.Title)
			box.Objects[1].(*widget.Label).SetText(movieSubtitle(m))
		},
	)
	t.list.OnSelected = func(i widget.ListItemID) {
		t.list.UnselectAll()
		if i < len(t.visible) {
			showMovieDetail(t.deps, t.main, t.visible[i])
		}
	}

	modeSelect := widget.NewSelect([]string{"Now Playing", "Upcoming"}, func(mode string) {
		t.mode = mode
		t.reload()
	})
	modeSelect.SetSelected("Now Playing")

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search title, genre or language...")
	searchEntry.OnChanged = func(q string) {
		t.query = q
		t.applyFilter()
	}

	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), t.reload)
	topBar := container.NewBorder(nil, nil, modeSelect, refreshButton, searchEntry)

	t.reload()
	return container.NewBorder(container.NewVBox(topBar, t.status), nil, nil, nil, t.list)
}

func (t *moviesTab) reload() {
	t.gen++
	gen := t.gen
	mode := t.mode
	t.status.SetText("Loading movies...")

	go func() {
		var movies []types.Movie
		var err error
		if mode == "Upcoming" {
			movies, err = t.deps.Movies.Upcoming(context.Background())
		} else {
			movies, err = t.deps.Movies.NowPlaying(context.Background())
		}
		fyne.Do(func() {
			if gen != t.gen {
				// A newer reload superseded this one; drop the result.
				return
			}
			if err != nil {
				log.Printf("Error loading movies: %v", err)
				t.status.SetText("Failed to load movies: " + err.Error())
				t.all = nil
				t.applyFilter()
				return
			}
			t.all = movies
			t.applyFilter()
		})
	}()
}

func (t *moviesTab) applyFilter() {
	t.visible = core.FilterMovies(t.all, t.query, 0)
	if len(t.all) > 0 {
		t.status.SetText(fmt.Sprintf("%d movies", len(t.visible)))
	} else if t.status.Text == "Loading movies..." {
		t.status.SetText("No movies found.")
	}
	t.list.Refresh()
}

func movieSubtitle(m types.Movie) string {
	s := m.Genre
	if m.Language != "" {
		s += " · " + m.Language
	}
	if m.DurationMin > 0 {
		s += fmt.Sprintf(" · %d min", m.DurationMin)
	}
	if m.Rating > 0 {
		s += fmt.Sprintf(" · %.1f/5", m.Rating)
	}
	return s
}
