package ui

import "fmt"

// Handler identifiers a shell binds view controls to. Render emits these;
// the shell owns the mapping from identifier to executable handler, so the
// binding step is an explicit contract instead of a rendering side effect.
const (
	HandlerLoginSubmit    = "login-submit"
	HandlerSignupSubmit   = "signup-submit"
	HandlerSwitchToLogin  = "switch-to-login"
	HandlerSwitchToSignup = "switch-to-signup"
	HandlerLogout         = "logout"
	HandlerContact        = "contact"
	HandlerFeedback       = "feedback"
	HandlerExit           = "exit"
)

// Control is one interactive element of a rendered view: the token the
// user types, a human label, and the handler identifier to bind.
type Control struct {
	Token   string
	Label   string
	Handler string
}

// View is a complete description of the UI for one state. Every render
// replaces the previous view wholesale; the shell must re-bind handlers
// from the fresh Controls list each time.
type View struct {
	Title    string
	Lines    []string
	Controls []Control
}

// sharedControls are available in every state.
var sharedControls = []Control{
	{Token: "contact", Label: "Send us a message", Handler: HandlerContact},
	{Token: "feedback", Label: "Leave feedback", Handler: HandlerFeedback},
	{Token: "exit", Label: "Leave the kiosk", Handler: HandlerExit},
}

// Render maps state to a view description. Pure: same state, same view.
func Render(s State) View {
	var v View

	switch {
	case s.LoggedIn():
		u := s.CurrentUser
		v = View{
			Title: "BAACafe — Dashboard",
			Lines: []string{
				fmt.Sprintf("Welcome back, %s!", u.Name),
				fmt.Sprintf("Email: %s", u.Email),
				fmt.Sprintf("Member since: %s", u.JoinDate.Format("2 January 2006")),
			},
			Controls: []Control{
				{Token: "logout", Label: "Log out", Handler: HandlerLogout},
			},
		}
	case s.CurrentView == ViewSignup:
		v = View{
			Title: "BAACafe — Sign up",
			Lines: []string{"Create an account to order ahead and save your favourites."},
			Controls: []Control{
				{Token: "signup", Label: "Fill in the signup form", Handler: HandlerSignupSubmit},
				{Token: "login", Label: "Already have an account? Log in", Handler: HandlerSwitchToLogin},
			},
		}
	default:
		v = View{
			Title: "BAACafe — Log in",
			Lines: []string{"Log in to your BAACafe account."},
			Controls: []Control{
				{Token: "login", Label: "Fill in the login form", Handler: HandlerLoginSubmit},
				{Token: "signup", Label: "New here? Create an account", Handler: HandlerSwitchToSignup},
			},
		}
	}

	if n := s.Notification; n != nil {
		v.Lines = append(v.Lines, fmt.Sprintf("[%s] %s", n.Kind, n.Message))
	}

	v.Controls = append(v.Controls, sharedControls...)
	return v
}
