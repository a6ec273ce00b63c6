package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/internal/types"
)

// newProfileTab builds the profile page: view/edit the account and
// change the password.
func newProfileTab(deps *Deps, win fyne.Window) fyne.CanvasObject {
	emailLabel := widget.NewLabel("")
	nameEntry := widget.NewEntry()
	phoneEntry := widget.NewEntry()
	statusLabel := widget.NewLabel("")

	fillFrom := func(user *types.User) {
		if user == nil {
			return
		}
		emailLabel.SetText(user.Email)
		nameEntry.SetText(user.Name)
		phoneEntry.SetText(user.Phone)
	}
	fillFrom(deps.Session.User())

	// The snapshot may be stale; refresh it from the API.
	go func() {
		user, err := deps.Auth.Me(context.Background())
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error refreshing profile: %v", err)
				return
			}
			deps.Session.SetUser(*user)
			fillFrom(user)
		})
	}()

	var saveButton *widget.Button
	saveButton = widget.NewButton("Save Profile", func() {
		saveButton.Disable()
		statusLabel.SetText("Saving...")
		req := types.UpdateProfileRequest{Name: nameEntry.Text, Phone: phoneEntry.Text}
		go func() {
			user, err := deps.Auth.UpdateProfile(context.Background(), req)
			fyne.Do(func() {
				saveButton.Enable()
				if err != nil {
					log.Printf("Profile update failed: %v", err)
					statusLabel.SetText("")
					dialog.ShowError(err, win)
					return
				}
				deps.Session.SetUser(*user)
				fillFrom(user)
				statusLabel.SetText("Profile saved.")
			})
		}()
	})

	profileForm := widget.NewCard("Account", "", container.NewVBox(
		container.NewGridWithColumns(2, widget.NewLabel("Email"), emailLabel),
		container.NewGridWithColumns(2, widget.NewLabel("Name"), nameEntry),
		container.NewGridWithColumns(2, widget.NewLabel("Phone"), phoneEntry),
		saveButton,
		statusLabel,
	))

	oldPasswordEntry := widget.NewPasswordEntry()
	oldPasswordEntry.SetPlaceHolder("Current password")
	newPasswordEntry := widget.NewPasswordEntry()
	newPasswordEntry.SetPlaceHolder("New password (min 6 characters)")

	var passwordButton *widget.Button
	passwordButton = widget.NewButton("Change Password", func() {
		passwordButton.Disable()
		req := types.ChangePasswordRequest{
			OldPassword: oldPasswordEntry.Text,
			NewPassword: newPasswordEntry.Text,
		}
		go func() {
			err := deps.Auth.ChangePassword(context.Background(), req)
			fyne.Do(func() {
				passwordButton.Enable()
				if err != nil {
					log.Printf("Password change failed: %v", err)
					dialog.ShowError(err, win)
					return
				}
				oldPasswordEntry.SetText("")
				newPasswordEntry.SetText("")
				dialog.ShowInformation("Password", "Password changed.", win)
			})
		}()
	})

	passwordForm := widget.NewCard("Password", "", container.NewVBox(
		oldPasswordEntry,
		newPasswordEntry,
		passwordButton,
	))

	return container.NewVBox(profileForm, passwordForm)
}
