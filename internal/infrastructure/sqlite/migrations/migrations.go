// Package migrations embebe el esquema SQLite (formato goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
