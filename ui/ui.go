package ui

import (
	"fyne.io/fyne/v2"

	"github.com/cinedesk/v2/internal/auth"
	"github.com/cinedesk/v2/services"
)

// Deps bundles the session and the domain services every window pulls
// from. Built once in main and passed down; nothing here is ambient.
type Deps struct {
	App     fyne.App
	Session *auth.Session

	Auth      auth.Service
	Movies    *services.MovieService
	Cinemas   *services.CinemaService
	News      *services.NewsService
	Screens   *services.ScreenService
	Showtimes *services.ShowtimeService
	Bookings  *services.BookingService
	Distance  services.DistanceProvider

	// HomeLat/HomeLon feed the distance lookup; both zero disables it.
	HomeLat float64
	HomeLon float64

	// OnSessionEnd is invoked when the user logs out or an
	// authenticated call is rejected, so main can bring the login
	// window back.
	OnSessionEnd func()
}
