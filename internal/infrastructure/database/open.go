package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// Engines motores abiertos al arrancar y su adaptador.
type Engines struct {
	Adapter *Adapter
	targets map[Backend]Target
	closers []func()
}

// OpenEngines abre los motores habilitados y aplica migraciones si AutoMigrate.
// Si falla un motor que no es el de por defecto se registra y se sigue sin él.
func OpenEngines(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Engines, error) {
	fallback, ok := ParseBackend(cfg.Default)
	if !ok {
		return nil, fmt.Errorf("DB_DEFAULT inválido: %q", cfg.Default)
	}
	e := &Engines{targets: map[Backend]Target{}}

	open := func(b Backend, fn func() (*sql.DB, error), migrate func(context.Context, *sql.DB) ([]*goose.MigrationResult, error), d Target) error {
		db, err := fn()
		if err == nil && cfg.AutoMigrate {
			var res []*goose.MigrationResult
			res, err = migrate(ctx, db)
			logMigrations(log, b, res)
		}
		if err != nil {
			if db != nil {
				_ = db.Close()
			}
			if b == fallback {
				return fmt.Errorf("%s: %w", b, err)
			}
			log.Warn().Err(err).Str("backend", b.String()).Msg("motor no disponible, se omite")
			return nil
		}
		d.DB = db
		e.targets[b] = d
		log.Info().Str("backend", b.String()).Msg("motor listo")
		return nil
	}

	if cfg.Postgres.Enabled {
		err := open(Postgres, func() (*sql.DB, error) {
			db, pool, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return nil, err
			}
			e.closers = append(e.closers, pool.Close)
			return db, nil
		}, postgres.Migrate, Target{Dialect: postgres.Dialect})
		if err != nil {
			e.Close()
			return nil, err
		}
	}
	if cfg.SQLite.Enabled {
		err := open(SQLite, func() (*sql.DB, error) {
			return sqlite.Open(ctx, cfg.SQLite)
		}, sqlite.Migrate, Target{Dialect: sqlite.Dialect})
		if err != nil {
			e.Close()
			return nil, err
		}
	}

	adapter, err := NewAdapter(fallback, e.targets)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.Adapter = adapter
	return e, nil
}

// DB pool del motor b (nil si no está abierto).
func (e *Engines) DB(b Backend) *sql.DB { return e.targets[b].DB }

// Target pool y dialecto del motor b.
func (e *Engines) Target(b Backend) (Target, bool) {
	t, ok := e.targets[b]
	return t, ok
}

// Close cierra los *sql.DB y después los pools pgx.
func (e *Engines) Close() {
	for _, t := range e.targets {
		_ = t.DB.Close()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.targets = map[Backend]Target{}
	e.closers = nil
}

func logMigrations(log *logger.Logger, b Backend, res []*goose.MigrationResult) {
	for _, r := range res {
		if r == nil || r.Source == nil {
			continue
		}
		log.Info().
			Str("backend", b.String()).
			Int64("version", r.Source.Version).
			Dur("duration", r.Duration).
			Msg("migración aplicada")
	}
}
