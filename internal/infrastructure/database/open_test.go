package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func sqliteOnly(t *testing.T, def string) config.DBConfig {
	return config.DBConfig{
		Default:     def,
		AutoMigrate: true,
		SQLite:      config.SQLiteConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "app.db")},
	}
}

func TestOpenEngines_SoloSQLite(t *testing.T) {
	ctx := context.Background()
	e, err := database.OpenEngines(ctx, sqliteOnly(t, "sqlite"), logger.Nop())
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, []database.Backend{database.SQLite}, e.Adapter.Backends())
	assert.Nil(t, e.DB(database.Postgres))

	c := e.Adapter.Client("postgres")
	assert.Equal(t, "sqlite", c.Backend(), "motor no abierto cae al de por defecto")
	require.NoError(t, c.Connect(ctx))
	defer c.Disconnect()
	n, err := c.Repos().Users.GetByEmail(ctx, "nadie@example.com")
	assert.Nil(t, n)
	assert.Error(t, err)
}

func TestOpenEngines_DefaultNoHabilitado(t *testing.T) {
	_, err := database.OpenEngines(context.Background(), sqliteOnly(t, "postgres"), logger.Nop())
	assert.Error(t, err)
}

func TestOpenEngines_DefaultInvalido(t *testing.T) {
	_, err := database.OpenEngines(context.Background(), sqliteOnly(t, "mysql"), logger.Nop())
	assert.ErrorContains(t, err, "mysql")
}
