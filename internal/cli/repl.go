package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// execIface is the handler surface the loop binds view controls to. The
// real App satisfies it; tests can provide a lightweight stub.
type execIface interface {
	CurrentView() ui.View
	LoginSubmit(ctx context.Context) error
	SignupSubmit(ctx context.Context) error
	SwitchToLogin(ctx context.Context) error
	SwitchToSignup(ctx context.Context) error
	Logout(ctx context.Context) error
	Contact(ctx context.Context) error
	Feedback(ctx context.Context) error
}

// runLoop reads one command token per line and dispatches it through the
// current view's control list. Only the handlers named by the freshly
// rendered controls are reachable, so every re-render re-binds the
// available commands. The loop exits on scanner EOF or the exit control.
//
// Errors from handlers are ignored here; handlers recover locally and
// surface failures as notifications. This keeps the loop focused on I/O.
func runLoop(ctx context.Context, a execIface, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprint(out, "baacafe> ")
		if !scanner.Scan() {
			return
		}
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		view := a.CurrentView()

		if token == "help" {
			for _, c := range view.Controls {
				fmt.Fprintf(out, "  %-10s %s\n", c.Token, c.Label)
			}
			continue
		}

		ctrl, ok := findControl(view, token)
		if !ok {
			fmt.Fprintln(out, "Unknown command:", token)
			continue
		}

		switch ctrl.Handler {
		case ui.HandlerLoginSubmit:
			_ = a.LoginSubmit(ctx)
		case ui.HandlerSignupSubmit:
			_ = a.SignupSubmit(ctx)
		case ui.HandlerSwitchToLogin:
			_ = a.SwitchToLogin(ctx)
		case ui.HandlerSwitchToSignup:
			_ = a.SwitchToSignup(ctx)
		case ui.HandlerLogout:
			_ = a.Logout(ctx)
		case ui.HandlerContact:
			_ = a.Contact(ctx)
		case ui.HandlerFeedback:
			_ = a.Feedback(ctx)
		case ui.HandlerExit:
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unbound control:", ctrl.Handler)
		}
	}
}

func findControl(v ui.View, token string) (ui.Control, bool) {
	for _, c := range v.Controls {
		if c.Token == token {
			return c, true
		}
	}
	return ui.Control{}, false
}
