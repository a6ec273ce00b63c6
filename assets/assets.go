package assets

import (
	"embed"

	"fyne.io/fyne/v2"
)

//go:embed ticket.svg
var assetsFS embed.FS

// GetTicketResource returns the ticket icon resource for Fyne.
func GetTicketResource() fyne.Resource {
	data, err := assetsFS.ReadFile("ticket.svg")
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource("ticket.svg", data)
}
