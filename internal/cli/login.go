package cli

import (
	"context"
	"errors"
	"time"

	"github.com/katlegop/baacafe-kiosk/internal/common"
	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// LoginSubmit prompts for credentials and the remember-me choice, then
// attempts a login.
//
// On success the state moves to the dashboard, a success notification is
// shown, and a navigation to the landing page is scheduled for when the
// notification's display window elapses. A failed match shows "Invalid
// email or password" and leaves the state untouched.
func (a *App) LoginSubmit(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	remember, err := getYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	acc, err := a.auth.Login(ctx, email, password, remember)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.scheduler.Show("Invalid email or password", models.NotificationError)
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.setState(func(s ui.State) ui.State { return s.WithUser(acc) })
	a.scheduler.Show("Login successful! Redirecting...", models.NotificationSuccess)

	target := a.config.LandingPage
	time.AfterFunc(a.config.NotificationDisplay, func() {
		a.navigator.Navigate(target)
	})
	return nil
}
