// Package ui holds the auth view state and the pure renderer that maps it
// to a view description. Transitions produce new values; nothing here
// touches storage or the terminal, so the flow is testable on its own.
package ui

import "github.com/katlegop/baacafe-kiosk/internal/models"

// FormView selects which logged-out form is showing.
type FormView string

const (
	ViewLogin  FormView = "login"
	ViewSignup FormView = "signup"
)

// State is the transient UI state. CurrentView only matters while
// CurrentUser is nil; a logged-in user always sees the dashboard.
// Notification is the currently visible transient message, if any.
type State struct {
	CurrentView  FormView
	CurrentUser  *models.Account
	Notification *models.Notification
}

// NewState seeds the initial state from a restored session: logged in when
// an account was restored, otherwise the login form.
func NewState(restored *models.Account) State {
	return State{CurrentView: ViewLogin, CurrentUser: restored}
}

// LoggedIn reports whether a user session is active.
func (s State) LoggedIn() bool {
	return s.CurrentUser != nil
}

// WithView switches the logged-out form.
func (s State) WithView(v FormView) State {
	s.CurrentView = v
	return s
}

// WithUser enters the logged-in state for acc.
func (s State) WithUser(acc models.Account) State {
	s.CurrentUser = &acc
	return s
}

// WithoutUser leaves the logged-in state and lands on the login form.
func (s State) WithoutUser() State {
	s.CurrentUser = nil
	s.CurrentView = ViewLogin
	return s
}

// WithNotification attaches the visible notification (nil clears it).
func (s State) WithNotification(n *models.Notification) State {
	s.Notification = n
	return s
}
