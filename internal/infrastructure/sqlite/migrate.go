package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlite/migrations"
)

// Migrate aplica las migraciones embebidas pendientes.
func Migrate(ctx context.Context, db *sql.DB) ([]*goose.MigrationResult, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	res, err := provider.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("migrar sqlite: %w", err)
	}
	return res, nil
}
