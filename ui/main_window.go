package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainWindowUI is the signed-in shell: one tab per page plus logout.
type MainWindowUI struct {
	deps *Deps
	Win  fyne.Window

	tabs     *container.AppTabs
	bookings *bookingsTab
}

// NewMainWindow builds the main window with all pages.
func NewMainWindow(deps *Deps) *MainWindowUI {
	ui := &MainWindowUI{deps: deps}
	ui.Win = deps.App.NewWindow("CineDesk")
	ui.Win.Resize(fyne.NewSize(900, 640))

	ui.bookings = newBookingsTab(deps, ui.Win)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem("Movies", newMoviesTab(deps, ui, ui.Win)),
		container.NewTabItem("Cinemas", newCinemasTab(deps, ui.Win)),
		container.NewTabItem("News", newNewsTab(deps, ui.Win)),
		container.NewTabItem("My Bookings", ui.bookings.content),
		container.NewTabItem("Profile", newProfileTab(deps, ui.Win)),
	)
	ui.tabs.OnSelected = func(item *container.TabItem) {
		// History is the one tab whose data changes behind our back
		// (new bookings, server-side cancellations), so re-fetch it on
		// every visit.
		if item.Text == "My Bookings" {
			ui.bookings.reload()
		}
	}

	greeting := widget.NewLabel("")
	if user := deps.Session.User(); user != nil {
		greeting.SetText(fmt.Sprintf("Signed in as %s", user.Name))
	}
	logoutButton := widget.NewButton("Logout", func() {
		log.Println("User logged out.")
		deps.Session.End()
		if deps.OnSessionEnd != nil {
			deps.OnSessionEnd()
		}
		ui.Win.Close()
	})
	topBar := container.NewBorder(nil, nil, greeting, logoutButton)

	ui.Win.SetContent(container.NewBorder(topBar, nil, nil, nil, ui.tabs))
	return ui
}

// ShowBookings switches to the bookings tab and reloads it. The seat
// window calls this after a successful checkout.
func (ui *MainWindowUI) ShowBookings() {
	ui.tabs.SelectIndex(3)
	ui.bookings.reload()
	ui.Win.RequestFocus()
}
