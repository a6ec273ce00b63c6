package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/cinedesk/v2/assets"
	"github.com/cinedesk/v2/core"
	"github.com/cinedesk/v2/internal/auth"
	"github.com/cinedesk/v2/internal/config"
	"github.com/cinedesk/v2/services"
	"github.com/cinedesk/v2/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	myApp := app.New()
	if icon := assets.GetTicketResource(); icon != nil {
		myApp.SetIcon(icon)
	} else {
		log.Println("Failed to load icon from embedded resources")
	}

	store := core.NewLocalStore(cfg.DataDir, "")
	if err := store.Connect(); err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer store.Close()

	session := auth.NewSession(store)

	deps := &ui.Deps{
		App:     myApp,
		Session: session,
		HomeLat: cfg.HomeLat,
		HomeLon: cfg.HomeLon,
	}

	var (
		mainWin   *ui.MainWindowUI
		loginOpen bool
		showMain  func()
	)
	// endSession closes whatever is open and brings the login window
	// back. Both the logout button and a rejected authenticated call
	// funnel through here, so it has to tolerate repeat invocations.
	endSession := func() {
		if mainWin != nil {
			mainWin.Win.Close()
			mainWin = nil
		}
		if loginOpen {
			return
		}
		loginOpen = true
		ui.NewLoginWindow(deps, func() {
			loginOpen = false
			showMain()
		}).Show()
	}

	api := services.NewApiClient(cfg.APIBaseURL, session.Token, func() {
		log.Println("Authenticated call rejected by server, forcing re-login.")
		session.End()
		fyne.Do(endSession)
	})

	deps.Auth = services.NewAuthService(api)
	deps.Movies = services.NewMovieService(api)
	deps.Cinemas = services.NewCinemaService(api)
	deps.News = services.NewNewsService(api)
	deps.Screens = services.NewScreenService(api)
	deps.Showtimes = services.NewShowtimeService(api)
	deps.Bookings = services.NewBookingService(api)
	deps.Distance = services.NewRoutingService(cfg.RoutingAPIURL, cfg.RoutingAPIKey)
	deps.OnSessionEnd = endSession

	showMain = func() {
		mainWin = ui.NewMainWindow(deps)
		mainWin.Win.Show()
	}

	if session.Restore() {
		log.Println("Restored persisted session, launching main window.")
		showMain()
	} else {
		log.Println("No usable session, launching login window.")
		loginOpen = true
		ui.NewLoginWindow(deps, func() {
			loginOpen = false
			showMain()
		}).Show()
	}

	myApp.Run()
	log.Println("Application has exited.")
}
