// Package migrations embeds the SQL migrations for the kiosk's local store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
