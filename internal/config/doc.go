// Package config loads runtime configuration for the BAACafe kiosk.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the durable store file
//	-l string   landing page after login
//	-n int      notification display time (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so durations can be either strings
// like "3s" or integer nanoseconds:
//
//	{
//	  "store_path": "kiosk.db",
//	  "landing_page": "index.html",
//	  "notification_display": "3s"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
