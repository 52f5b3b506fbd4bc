// Package migrations embebe el esquema PostgreSQL (formato goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
