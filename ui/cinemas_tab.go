package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/core"
	"github.com/cinedesk/v2/internal/types"
)

type cinemasTab struct {
	deps *Deps
	win  fyne.Window

	all       []types.Cinema
	visible   []types.Cinema
	distances map[int]string
	query     string
	gen       int

	list   *widget.List
	status *widget.Label
}

// newCinemasTab builds the cinema listing page with the optional
// distance column and per-cinema reviews.
func newCinemasTab(deps *Deps, win fyne.Window) fyne.CanvasObject {
	t := &cinemasTab{deps: deps, win: win, distances: make(map[int]string)}

	t.status = widget.NewLabel("Loading cinemas...")
	t.list = widget.NewList(
		func() int { return len(t.visible) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("name")
			name.TextStyle = fyne.TextStyle{Bold: true}
			details := widget.NewLabel("details")
			reviewsButton := widget.NewButton("Reviews", nil)
			return container.NewBorder(nil, nil, nil, reviewsButton, container.NewVBox(name, details))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(t.visible) {
				return
			}
			c := t.visible[i]
			border := obj.(*fyne.Container)
			var reviewsButton *widget.Button
			var textBox *fyne.Container
			for _, child := range border.Objects {
				switch o := child.(type) {
				case *widget.Button:
					reviewsButton = o
				case *fyne.Container:
					textBox = o
				}
			}
			textBox.Objects[0].(*widget.Label).SetText(c.Name)
			distance := t.distances[c.ID]
			if distance == "" {
				distance = "distance unknown"
			}
			textBox.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%s, %s · %s", c.Address, c.City, distance))
			reviewsButton.OnTapped = func() { t.showReviews(c) }
		},
	)

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search name, address or city...")
	searchEntry.OnChanged = func(q string) {
		t.query = q
		t.applyFilter()
	}
	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), t.reload)
	topBar := container.NewBorder(nil, nil, nil, refreshButton, searchEntry)

	t.reload()
	return container.NewBorder(container.NewVBox(topBar, t.status), nil, nil, nil, t.list)
}

func (t *cinemasTab) reload() {
	t.gen++
	gen := t.gen
	t.status.SetText("Loading cinemas...")

	go func() {
		cinemas, err := t.deps.Cinemas.List(context.Background(), "")
		fyne.Do(func() {
			if gen != t.gen {
				return
			}
			if err != nil {
				log.Printf("Error loading cinemas: %v", err)
				t.all = nil
				t.visible = nil
				t.status.SetText("Failed to load cinemas: " + err.Error())
				t.list.Refresh()
				return
			}
			t.all = cinemas
			t.applyFilter()
			t.loadDistances(cinemas)
		})
	}()
}

// loadDistances resolves each cinema's distance in the background. A
// failed lookup leaves "distance unknown" and never blocks the page.
func (t *cinemasTab) loadDistances(cinemas []types.Cinema) {
	if t.deps.HomeLat == 0 && t.deps.HomeLon == 0 {
		return
	}
	for _, c := range cinemas {
		if c.Latitude == 0 && c.Longitude == 0 {
			continue
		}
		cinema := c
		go func() {
			km, err := t.deps.Distance.Distance(context.Background(),
				t.deps.HomeLat, t.deps.HomeLon, cinema.Latitude, cinema.Longitude)
			fyne.Do(func() {
				if err != nil {
					return
				}
				t.distances[cinema.ID] = fmt.Sprintf("%.1f km away", km)
				t.list.Refresh()
			})
		}()
	}
}

func (t *cinemasTab) applyFilter() {
	t.visible = core.FilterCinemas(t.all, t.query)
	t.status.SetText(fmt.Sprintf("%d cinemas", len(t.visible)))
	t.list.Refresh()
}

func (t *cinemasTab) showReviews(cinema types.Cinema) {
	go func() {
		reviews, err := t.deps.Cinemas.Reviews(context.Background(), cinema.ID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error loading reviews for cinema %d: %v", cinema.ID, err)
				dialog.ShowError(err, t.win)
				return
			}
			t.showReviewsDialog(cinema, reviews)
		})
	}()
}

func (t *cinemasTab) showReviewsDialog(cinema types.Cinema, reviews []types.Review) {
	reviewsBox := container.NewVBox()
	for _, r := range reviews {
		header := widget.NewLabel(fmt.Sprintf("%s · %d/5", r.UserName, r.Rating))
		header.TextStyle = fyne.TextStyle{Bold: true}
		comment := widget.NewLabel(r.Comment)
		comment.Wrapping = fyne.TextWrapWord
		reviewsBox.Add(header)
		reviewsBox.Add(comment)
	}
	if len(reviews) == 0 {
		reviewsBox.Add(widget.NewLabel("No reviews yet."))
	}

	ratingSelect := widget.NewSelect([]string{"1", "2", "3", "4", "5"}, nil)
	ratingSelect.SetSelected("5")
	commentEntry := widget.NewMultiLineEntry()
	commentEntry.SetPlaceHolder("Your review...")

	scroll := container.NewVScroll(reviewsBox)
	scroll.SetMinSize(fyne.NewSize(400, 220))
	content := container.NewVBox(scroll, widget.NewSeparator(), ratingSelect, commentEntry)

	dialog.ShowCustomConfirm(fmt.Sprintf("Reviews · %s", cinema.Name), "Post Review", "Close", content,
		func(post bool) {
			if !post {
				return
			}
			rating, _ := strconv.Atoi(ratingSelect.Selected)
			review := types.Review{CinemaID: cinema.ID, Rating: rating, Comment: commentEntry.Text}
			go func() {
				_, err := t.deps.Cinemas.AddReview(context.Background(), review)
				fyne.Do(func() {
					if err != nil {
						log.Printf("Error posting review: %v", err)
						dialog.ShowError(err, t.win)
						return
					}
					log.Printf("Review posted on cinema %d.", cinema.ID)
				})
			}()
		}, t.win)
}
