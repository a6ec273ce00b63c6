package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/cinedesk/v2/core"
	"github.com/cinedesk/v2/internal/types"
	"github.com/cinedesk/v2/services"
)

// SeatWindowUI is the seat-selection and checkout page for one
// showtime.
type SeatWindowUI struct {
	deps *Deps
	main *MainWindowUI
	Win  fyne.Window

	showtimeID int
	loader     *core.SeatPlanLoader
	layout     core.LayoutBuilder
	selection  *core.Selection

	plan          *core.SeatPlan
	paymentMethod string
	idemKey       string
	isSubmitting  bool
	gen           int
	closed        bool

	header        *widget.Label
	noticeLabel   *widget.Label
	totalLabel    *widget.Label
	seatGrid      *fyne.Container
	confirmButton *widget.Button
}

// NewSeatWindow builds the seat map window for a showtime.
func NewSeatWindow(deps *Deps, main *MainWindowUI, showtimeID int) *SeatWindowUI {
	ui := &SeatWindowUI{
		deps:          deps,
		main:          main,
		showtimeID:    showtimeID,
		loader:        core.NewSeatPlanLoader(deps.Showtimes, deps.Screens),
		selection:     core.NewSelection(),
		paymentMethod: types.PaymentMethods[0],
		idemKey:       uuid.NewString(),
	}
	ui.Win = deps.App.NewWindow("Select Seats")
	ui.Win.Resize(fyne.NewSize(720, 600))
	ui.Win.SetOnClosed(func() {
		// Results of in-flight fetches are dropped once the window is
		// gone; the selection dies with the page.
		ui.closed = true
	})

	ui.header = widget.NewLabel("Loading seat selection...")
	ui.noticeLabel = widget.NewLabel("")
	ui.totalLabel = widget.NewLabel("Total: $0.00")
	ui.totalLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.seatGrid = container.NewVBox()

	paymentSelect := widget.NewSelect(types.PaymentMethods, func(m string) {
		ui.paymentMethod = m
	})
	paymentSelect.SetSelected(ui.paymentMethod)

	ui.confirmButton = widget.NewButton("Book Seats", ui.submit)
	ui.confirmButton.Importance = widget.HighImportance

	refreshButton := widget.NewButtonWithIcon("Refresh availability", theme.ViewRefreshIcon(), ui.reload)

	checkout := container.NewBorder(nil, nil,
		container.NewHBox(ui.totalLabel, paymentSelect),
		container.NewHBox(refreshButton, ui.confirmButton),
	)
	ui.Win.SetContent(container.NewBorder(
		container.NewVBox(ui.header, ui.noticeLabel),
		checkout,
		nil, nil,
		container.NewVScroll(ui.seatGrid),
	))

	ui.reload()
	return ui
}

// Show displays the window.
func (ui *SeatWindowUI) Show() {
	ui.Win.Show()
}

// reload re-fetches the whole seat plan. Selected seats that were
// booked by someone else in the meantime fall out of the selection so
// the availability invariant keeps holding.
func (ui *SeatWindowUI) reload() {
	ui.gen++
	gen := ui.gen
	ui.header.SetText("Loading seat selection...")

	go func() {
		plan, err := ui.loader.Load(context.Background(), ui.showtimeID)
		fyne.Do(func() {
			if ui.closed || gen != ui.gen {
				return
			}
			if err != nil {
				log.Printf("Error loading seat plan for showtime %d: %v", ui.showtimeID, err)
				ui.header.SetText(err.Error())
				ui.seatGrid.RemoveAll()
				ui.seatGrid.Refresh()
				return
			}
			ui.plan = plan
			ui.pruneSelection()
			ui.header.SetText(fmt.Sprintf("%s · %s · %s %s",
				plan.Showtime.MovieTitle, plan.Screen.Name, plan.Showtime.ShowDate, plan.Showtime.ShowTime))
			ui.renderSeats()
			ui.updateTotal()
		})
	}()
}

func (ui *SeatWindowUI) pruneSelection() {
	for _, seat := range ui.plan.Seats {
		if seat.Status == types.SeatReserved {
			ui.selection.Remove(seat.ID)
		}
	}
}

func (ui *SeatWindowUI) renderSeats() {
	ui.seatGrid.RemoveAll()
	for _, section := range ui.layout.Build(ui.plan.Seats) {
		title := fmt.Sprintf("%s · $%.2f", section.Type, section.Price)
		ui.seatGrid.Add(widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
		for _, row := range section.Rows {
			ui.seatGrid.Add(ui.renderRow(row))
		}
	}
	ui.seatGrid.Add(widget.NewLabelWithStyle("SCREEN THIS WAY", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
	ui.seatGrid.Refresh()
}

func (ui *SeatWindowUI) renderRow(row core.LayoutRow) fyne.CanvasObject {
	rowLabel := widget.NewLabelWithStyle(row.Row, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	if row.Centered() {
		return container.NewBorder(nil, nil, rowLabel, nil, container.NewCenter(ui.renderBlock(row.Full)))
	}
	blocks := container.NewHBox(
		ui.renderBlock(row.Left),
		layout.NewSpacer(),
		ui.renderBlock(row.Middle),
		layout.NewSpacer(),
		ui.renderBlock(row.Right),
	)
	return container.NewBorder(nil, nil, rowLabel, nil, blocks)
}

func (ui *SeatWindowUI) renderBlock(seats []core.PlanSeat) *fyne.Container {
	box := container.NewHBox()
	for i := range seats {
		seat := seats[i]
		button := widget.NewButton(seat.Label, func() { ui.toggle(seat) })
		switch {
		case seat.Status == types.SeatReserved:
			button.Importance = widget.LowImportance
		case ui.selection.Contains(seat.ID):
			button.Importance = widget.HighImportance
		default:
			button.Importance = widget.MediumImportance
		}
		box.Add(button)
	}
	return box
}

func (ui *SeatWindowUI) toggle(seat core.PlanSeat) {
	if err := ui.selection.Toggle(seat); err != nil {
		switch {
		case errors.Is(err, core.ErrSeatReserved):
			ui.notice(fmt.Sprintf("Seat %s is already booked.", seat.Label))
		case errors.Is(err, core.ErrSelectionFull):
			ui.notice("Maximum 10 seats allowed per booking.")
		default:
			ui.notice(err.Error())
		}
		return
	}
	ui.notice("")
	ui.renderSeats()
	ui.updateTotal()
}

func (ui *SeatWindowUI) updateTotal() {
	total := core.TotalPrice(ui.selection, ui.plan.Seats)
	ui.totalLabel.SetText(fmt.Sprintf("Total: $%.2f (%d seats)", total, ui.selection.Len()))
}

func (ui *SeatWindowUI) notice(text string) {
	ui.noticeLabel.SetText(text)
}

// submit books the selected seats. The button is disabled while the
// request is in flight; on a conflict the server's message is shown
// verbatim and the selection stays so the user can refresh and retry.
func (ui *SeatWindowUI) submit() {
	if ui.isSubmitting {
		return
	}
	if ui.selection.Len() == 0 {
		ui.notice("Select at least one seat first.")
		return
	}
	if !ui.deps.Session.LoggedIn() {
		log.Println("Booking attempted without a session, redirecting to login.")
		if ui.deps.OnSessionEnd != nil {
			ui.deps.OnSessionEnd()
		}
		ui.Win.Close()
		return
	}

	ui.isSubmitting = true
	ui.confirmButton.Disable()
	req := types.CreateBookingRequest{
		ShowtimeID:    ui.showtimeID,
		SeatIDs:       ui.selection.IDs(),
		PaymentMethod: ui.paymentMethod,
	}

	go func() {
		booking, err := ui.deps.Bookings.Create(context.Background(), req, ui.idemKey)
		fyne.Do(func() {
			if ui.closed {
				return
			}
			ui.isSubmitting = false
			ui.confirmButton.Enable()
			if err != nil {
				log.Printf("Booking failed for showtime %d: %v", ui.showtimeID, err)
				if errors.Is(err, services.ErrUnauthorized) {
					if ui.deps.OnSessionEnd != nil {
						ui.deps.OnSessionEnd()
					}
					ui.Win.Close()
					return
				}
				dialog.ShowError(err, ui.Win)
				return
			}

			log.Printf("Booking %d created for showtime %d.", booking.ID, ui.showtimeID)
			ui.selection.Clear()
			ui.idemKey = uuid.NewString()
			ui.main.ShowBookings()
			ui.Win.Close()
		})
	}()
}
