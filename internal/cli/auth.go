package cli

import (
	"context"

	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// SwitchToLogin shows the login form.
func (a *App) SwitchToLogin(ctx context.Context) error {
	a.setState(func(s ui.State) ui.State { return s.WithView(ui.ViewLogin) })
	return nil
}

// SwitchToSignup shows the signup form.
func (a *App) SwitchToSignup(ctx context.Context) error {
	a.setState(func(s ui.State) ui.State { return s.WithView(ui.ViewSignup) })
	return nil
}

// Logout clears the session from both scopes and returns to the login
// form with a success notification.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.setState(func(s ui.State) ui.State { return s.WithoutUser() })
	a.scheduler.Show("Logged out successfully", models.NotificationSuccess)
	return nil
}
