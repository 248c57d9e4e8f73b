package cli

import (
	"context"
	"errors"

	"github.com/katlegop/baacafe-kiosk/internal/common"
	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// SignupSubmit prompts for the signup form and attempts to register.
//
// A password mismatch or an already-registered email shows the matching
// error notification and keeps the signup form. On success the registry
// gains the account, a success notification is shown, and the view
// switches to the login form.
func (a *App) SignupSubmit(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	_, err = a.auth.Signup(ctx, name, email, password, confirm)
	switch {
	case errors.Is(err, common.ErrPasswordMismatch):
		a.scheduler.Show("Passwords do not match", models.NotificationError)
		return nil
	case errors.Is(err, common.ErrEmailTaken):
		a.scheduler.Show("Email already registered", models.NotificationError)
		return nil
	case err != nil:
		a.log.Error(ctx, "signup failed", "error", err)
		return err
	}

	a.setState(func(s ui.State) ui.State { return s.WithView(ui.ViewLogin) })
	a.scheduler.Show("Account created! Please log in.", models.NotificationSuccess)
	return nil
}
