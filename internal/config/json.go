package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/katlegop/baacafe-kiosk/internal/flagx"
	"github.com/katlegop/baacafe-kiosk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the display window either as a
// string like "3s" or as integer nanoseconds.
type JsonConfig struct {
	StorePath           string         `json:"store_path"`
	LandingPage         string         `json:"landing_page"`
	NotificationDisplay timex.Duration `json:"notification_display"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via -c or -config. Missing flag means no JSON is loaded. Read or
// unmarshal errors panic; the intended order is defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.StorePath = jc.StorePath
	cfg.LandingPage = jc.LandingPage
	cfg.NotificationDisplay = time.Duration(jc.NotificationDisplay.Duration)
}
