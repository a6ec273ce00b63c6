package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/core"
	"github.com/cinedesk/v2/internal/types"
)

const bookingsPageSize = 8

type bookingsTab struct {
	deps *Deps
	win  fyne.Window

	all    []types.Booking
	filter core.HistoryFilter
	page   int
	gen    int

	list      *widget.List
	visible   []types.Booking
	status    *widget.Label
	pageLabel *widget.Label
	content   fyne.CanvasObject
}

// newBookingsTab builds the booking history page: status filter,
// free-text search, client-side pagination, and cancellation.
func newBookingsTab(deps *Deps, win fyne.Window) *bookingsTab {
	t := &bookingsTab{deps: deps, win: win}

	t.status = widget.NewLabel("Loading bookings...")
	t.pageLabel = widget.NewLabel("")

	t.list = widget.NewList(
		func() int { return len(t.visible) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("booking")
			title.TextStyle = fyne.TextStyle{Bold: true}
			details := widget.NewLabel("details")
			cancelButton := widget.NewButton("Cancel", nil)
			return container.NewBorder(nil, nil, nil, cancelButton, container.NewVBox(title, details))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(t.visible) {
				return
			}
			b := t.visible[i]
			border := obj.(*fyne.Container)
			var cancelButton *widget.Button
			var textBox *fyne.Container
			for _, child := range border.Objects {
				switch c := child.(type) {
				case *widget.Button:
					cancelButton = c
				case *fyne.Container:
					textBox = c
				}
			}
			textBox.Objects[0].(*widget.Label).SetText(bookingTitle(b))
			textBox.Objects[1].(*widget.Label).SetText(bookingDetails(b))

			cancelButton.OnTapped = func() { t.confirmCancel(b) }
			if core.Cancellable(b, time.Now()) {
				cancelButton.Enable()
			} else {
				cancelButton.Disable()
			}
		},
	)
	t.list.OnSelected = func(i widget.ListItemID) {
		t.list.UnselectAll()
		if i < len(t.visible) {
			t.showDetail(t.visible[i].ID)
		}
	}

	statusSelect := widget.NewSelect([]string{"All", "Booked", "Cancelled"}, func(s string) {
		switch s {
		case "Booked":
			t.filter.Status = types.BookingBooked
		case "Cancelled":
			t.filter.Status = types.BookingCancelled
		default:
			t.filter.Status = ""
		}
		t.page = 0
		t.applyFilter()
	})
	statusSelect.SetSelected("All")

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search movie, cinema, seats or date...")
	searchEntry.OnChanged = func(q string) {
		t.filter.Query = q
		t.page = 0
		t.applyFilter()
	}

	prevButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if t.page > 0 {
			t.page--
			t.applyFilter()
		}
	})
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		filtered := core.FilterBookings(t.all, t.filter)
		if t.page+1 < core.PageCount(len(filtered), bookingsPageSize) {
			t.page++
			t.applyFilter()
		}
	})
	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), t.reload)

	topBar := container.NewBorder(nil, nil, statusSelect, refreshButton, searchEntry)
	bottomBar := container.NewHBox(t.status, widget.NewSeparator(), prevButton, t.pageLabel, nextButton)

	t.content = container.NewBorder(topBar, bottomBar, nil, nil, t.list)
	t.reload()
	return t
}

func (t *bookingsTab) reload() {
	t.gen++
	gen := t.gen
	t.status.SetText("Loading bookings...")

	go func() {
		bookings, err := t.deps.Bookings.Mine(context.Background())
		fyne.Do(func() {
			if gen != t.gen {
				return
			}
			if err != nil {
				log.Printf("Error loading bookings: %v", err)
				// Keep the error on screen; applyFilter would replace it
				// with a count and make the failure look like an empty
				// history.
				t.all = nil
				t.visible = nil
				t.pageLabel.SetText("")
				t.status.SetText("Failed to load bookings: " + err.Error())
				t.list.Refresh()
				return
			}
			t.all = bookings
			t.applyFilter()
		})
	}()
}

func (t *bookingsTab) applyFilter() {
	filtered := core.FilterBookings(t.all, t.filter)
	pages := core.PageCount(len(filtered), bookingsPageSize)
	if pages == 0 {
		t.page = 0
	} else if t.page >= pages {
		t.page = pages - 1
	}
	t.visible = core.Paginate(filtered, t.page, bookingsPageSize)
	t.status.SetText(fmt.Sprintf("%d bookings", len(filtered)))
	if pages > 1 {
		t.pageLabel.SetText(fmt.Sprintf("Page %d/%d", t.page+1, pages))
	} else {
		t.pageLabel.SetText("")
	}
	t.list.Refresh()
}

// confirmCancel enforces the cutoff client-side, asks the user, then
// sends the cancellation. The row flips to Cancelled only through the
// full re-fetch, never by a local mutation.
func (t *bookingsTab) confirmCancel(b types.Booking) {
	if !core.Cancellable(b, time.Now()) {
		dialog.ShowError(core.ErrBookingNotCancellable, t.win)
		return
	}
	message := fmt.Sprintf("Cancel booking for %s on %s %s?", b.MovieTitle, b.ShowDate, b.ShowTime)
	dialog.ShowConfirm("Cancel Booking", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		go func() {
			err := t.deps.Bookings.Cancel(context.Background(), b.ID)
			fyne.Do(func() {
				if err != nil {
					log.Printf("Cancellation of booking %d failed: %v", b.ID, err)
					dialog.ShowError(err, t.win)
					return
				}
				log.Printf("Booking %d cancelled.", b.ID)
				t.reload()
			})
		}()
	}, t.win)
}

func (t *bookingsTab) showDetail(id int) {
	go func() {
		booking, err := t.deps.Bookings.Get(context.Background(), id)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error loading booking %d: %v", id, err)
				dialog.ShowError(err, t.win)
				return
			}
			detail := fmt.Sprintf(
				"%s\n%s · %s\n%s %s\nSeats: %s\nPayment: %s\nStatus: %s\nAmount: $%.2f",
				booking.MovieTitle, booking.CinemaName, booking.ScreenName,
				booking.ShowDate, booking.ShowTime,
				strings.Join(booking.SeatLabels, ", "),
				booking.PaymentMethod, booking.Status, booking.FinalAmount,
			)
			dialog.ShowInformation(fmt.Sprintf("Booking #%d", booking.ID), detail, t.win)
		})
	}()
}

func bookingTitle(b types.Booking) string {
	title := b.MovieTitle
	if title == "" {
		title = fmt.Sprintf("Booking #%d", b.ID)
	}
	return fmt.Sprintf("%s · %s", title, b.Status)
}

func bookingDetails(b types.Booking) string {
	return fmt.Sprintf("%s %s · %s · Seats: %s · $%.2f",
		b.ShowDate, b.ShowTime, b.CinemaName, strings.Join(b.SeatLabels, ", "), b.FinalAmount)
}
