package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres/migrations"
)

// Migrate aplica las migraciones embebidas pendientes. Usa un Provider propio
// (no el estado global de goose) porque SQLite migra en el mismo proceso.
func Migrate(ctx context.Context, db *sql.DB) ([]*goose.MigrationResult, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	res, err := provider.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("migrar postgres: %w", err)
	}
	return res, nil
}
