package database

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
)

var _ ports.ClientProvider = (*Adapter)(nil)

// Target un motor configurado: su pool y su dialecto SQL.
type Target struct {
	DB      *sql.DB
	Dialect sqlstore.Dialect
}

// Adapter se construye una vez al arrancar y es de solo lectura después.
type Adapter struct {
	targets  map[Backend]Target
	fallback Backend
}

// NewAdapter valida que el motor por defecto esté entre los configurados.
func NewAdapter(fallback Backend, targets map[Backend]Target) (*Adapter, error) {
	if _, ok := targets[fallback]; !ok {
		return nil, fmt.Errorf("motor por defecto %q no configurado", fallback)
	}
	copied := make(map[Backend]Target, len(targets))
	for b, t := range targets {
		if t.DB == nil {
			return nil, fmt.Errorf("motor %q sin conexión", b)
		}
		copied[b] = t
	}
	return &Adapter{targets: copied, fallback: fallback}, nil
}

// Resolve devuelve el motor pedido si es conocido y está configurado; si no, el de por defecto.
func (a *Adapter) Resolve(databaseType string) Backend {
	if b, ok := ParseBackend(databaseType); ok {
		if _, configured := a.targets[b]; configured {
			return b
		}
	}
	return a.fallback
}

// Client devuelve un cliente sin conectar para el motor resuelto.
func (a *Adapter) Client(databaseType string) *Client {
	b := a.Resolve(databaseType)
	t := a.targets[b]
	return &Client{backend: b, db: t.DB, dialect: t.Dialect}
}

// ClientFor implementa ports.ClientProvider.
func (a *Adapter) ClientFor(databaseType string) ports.DatabaseClient {
	return a.Client(databaseType)
}

// Default motor usado cuando la petición no elige uno.
func (a *Adapter) Default() Backend { return a.fallback }

// Backends motores configurados, ordenados.
func (a *Adapter) Backends() []Backend {
	out := make([]Backend, 0, len(a.targets))
	for b := range a.targets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
