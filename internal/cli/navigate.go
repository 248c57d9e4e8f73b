package cli

import (
	"fmt"
	"io"
)

// Navigator is the port for the post-login redirect. A successful login
// requests a navigation to the configured landing page once the success
// notification's display window has elapsed.
type Navigator interface {
	Navigate(target string)
}

// PrintNavigator announces the navigation on the shell's output, the
// kiosk's stand-in for a full page load.
type PrintNavigator struct {
	Out io.Writer
}

func (n *PrintNavigator) Navigate(target string) {
	fmt.Fprintf(n.Out, "Navigating to %s ...\n", target)
}
