// Package database elige el motor (PostgreSQL o SQLite) por petición y entrega
// clientes con una conexión dedicada.
package database

import "strings"

// Backend motor de base de datos soportado.
type Backend string

const (
	Postgres Backend = "postgres"
	SQLite   Backend = "sqlite"
)

// ParseBackend reconoce el nombre sin distinguir mayúsculas ni espacios.
func ParseBackend(s string) (Backend, bool) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case Postgres, SQLite:
		return b, true
	}
	return "", false
}

func (b Backend) String() string { return string(b) }
