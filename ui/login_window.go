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

// NewLoginWindow creates the login/signup window. On success the
// session is begun and onSuccess is called so main can open the main
// window.
func NewLoginWindow(deps *Deps, onSuccess func()) fyne.Window {
	win := deps.App.NewWindow("CineDesk — Sign In")

	loginTab := container.NewTabItem("Sign In", loginForm(deps, win, onSuccess))
	registerTab := container.NewTabItem("Create Account", registerForm(deps, win, onSuccess))
	tabs := container.NewAppTabs(loginTab, registerTab)

	win.SetContent(tabs)
	win.Resize(fyne.NewSize(360, 300))
	win.SetFixedSize(true)
	win.CenterOnScreen()
	return win
}

func loginForm(deps *Deps, win fyne.Window, onSuccess func()) fyne.CanvasObject {
	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("Email")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	statusLabel := widget.NewLabel("")

	var loginButton *widget.Button
	loginButton = widget.NewButton("Sign In", func() {
		statusLabel.SetText("Signing in...")
		loginButton.Disable()

		creds := types.Credentials{Email: emailEntry.Text, Password: passwordEntry.Text}
		go func() {
			resp, err := deps.Auth.Login(context.Background(), creds)
			fyne.Do(func() {
				loginButton.Enable()
				if err != nil {
					log.Printf("Login failed: %v", err)
					statusLabel.SetText("Sign in failed.")
					dialog.ShowError(err, win)
					return
				}
				log.Printf("Login successful for user: %s", resp.User.Name)
				deps.Session.Begin(resp.Token, resp.User)
				onSuccess()
				win.Close()
			})
		}()
	})

	return container.NewVBox(
		widget.NewLabel("Welcome back"),
		emailEntry,
		passwordEntry,
		loginButton,
		statusLabel,
	)
}

func registerForm(deps *Deps, win fyne.Window, onSuccess func()) fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Full name")

	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("Email")

	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder("Phone (optional)")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password (min 6 characters)")

	statusLabel := widget.NewLabel("")

	var registerButton *widget.Button
	registerButton = widget.NewButton("Create Account", func() {
		statusLabel.SetText("Creating account...")
		registerButton.Disable()

		req := types.RegisterRequest{
			Name:     nameEntry.Text,
			Email:    emailEntry.Text,
			Phone:    phoneEntry.Text,
			Password: passwordEntry.Text,
		}
		go func() {
			resp, err := deps.Auth.Register(context.Background(), req)
			fyne.Do(func() {
				registerButton.Enable()
				if err != nil {
					log.Printf("Registration failed: %v", err)
					statusLabel.SetText("Registration failed.")
					dialog.ShowError(err, win)
					return
				}
				log.Printf("Account created for user: %s", resp.User.Name)
				deps.Session.Begin(resp.Token, resp.User)
				onSuccess()
				win.Close()
			})
		}()
	})

	return container.NewVBox(
		widget.NewLabel("Join CineDesk"),
		nameEntry,
		emailEntry,
		phoneEntry,
		passwordEntry,
		registerButton,
		statusLabel,
	)
}
