package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Default)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, "session_token", cfg.Auth.CookieName)
	assert.True(t, cfg.Auth.AllowDiagnostics, "fuera de producción las rutas de diagnóstico son públicas")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DEFAULT", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("PAGINATION_MAX_LIMIT", "50")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POSTGRES_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Default)
	assert.Equal(t, "/tmp/x.db", cfg.DB.SQLite.Path)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.Postgres.Enabled)
	assert.False(t, cfg.Auth.AllowDiagnostics, "en producción las rutas de diagnóstico requieren sesión")
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		DB:         config.DBConfig{Default: "postgres", Postgres: config.PostgresConfig{Enabled: true}},
		JWT:        config.JWTConfig{Secret: "s3cr3t"},
		Pagination: config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
	}
	require.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	cfg.DB.Default = "mysql"
	cfg.Pagination.DefaultLimit = 500
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_DEFAULT")
	assert.Contains(t, err.Error(), "PAGINATION_DEFAULT_LIMIT")
}

func TestPostgresDSN_EscapesPassword(t *testing.T) {
	c := config.PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "gestion", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/gestion?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@h/db"
	assert.Equal(t, "postgres://u:p@h/db", c.ConnectionString())
}
