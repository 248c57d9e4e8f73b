package config

import (
	"flag"
	"os"
	"time"

	"github.com/katlegop/baacafe-kiosk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the durable store file (default from Config)
//	-l string   landing page after login (default from Config)
//	-n int      notification display time in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path of the durable store file")
	fs.StringVar(&cfg.LandingPage, "l", cfg.LandingPage, "landing page after login")
	notificationDisplay := fs.Int("n", int(cfg.NotificationDisplay.Seconds()), "notification display time (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationDisplay = time.Duration(*notificationDisplay) * time.Second
}
