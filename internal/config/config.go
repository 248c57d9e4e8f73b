package config

import "time"

// Config holds runtime settings for the BAACafe kiosk.
//
// Fields:
//   - StorePath: path of the durable SQLite store file.
//   - LandingPage: where a successful login navigates to.
//   - NotificationDisplay: how long a notification stays on screen.
type Config struct {
	StorePath           string
	LandingPage         string
	NotificationDisplay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "kiosk.db"
	c.LandingPage = "index.html"
	c.NotificationDisplay = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
