package http_test

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/Gestion-api/pkg/config"
)

// Pila completa: gate -> validación -> adaptador -> SQLite real.
func TestE2E_SQLiteActividadesPaginadas(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "e2e.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = sqlite.Migrate(ctx, db)
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	users := sqlstore.NewUserRepository(db, sqlite.Dialect)
	require.NoError(t, users.Create(ctx, &entity.User{
		ID: testUserID, Email: testEmail, Name: "Ana", PasswordHash: "x", Role: entity.RoleAdmin,
		CreatedAt: base, UpdatedAt: base,
	}))
	acts := sqlstore.NewActivityRepository(db, sqlite.Dialect)
	for i := 0; i < 25; i++ {
		require.NoError(t, acts.Create(ctx, &entity.Activity{
			ID:        fmt.Sprintf("a%02d", i),
			Type:      "order_created",
			Title:     fmt.Sprintf("Pedido %d", i),
			UserID:    testUserID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	adapter, err := database.NewAdapter(database.SQLite, map[database.Backend]database.Target{
		database.SQLite: {DB: db, Dialect: sqlite.Dialect},
	})
	require.NoError(t, err)
	e := newEnvWith(t, nil, nil, adapter)

	// x-database-type desconocido cae al motor por defecto.
	resp, body := e.do(t, http.MethodGet, "/api/activities?page=2&limit=10", tokenForRole(t, "user"), "", "x-database-type", "mongo")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	data := body["data"].(map[string]any)
	items := data["activities"].([]any)
	require.Len(t, items, 10)
	first := items[0].(map[string]any)
	assert.Equal(t, "a14", first["id"])
	assert.Equal(t, "Ana", first["user"].(map[string]any)["name"])

	pag := data["pagination"].(map[string]any)
	assert.EqualValues(t, 25, pag["total"])
	assert.EqualValues(t, 2, pag["page"])
	assert.EqualValues(t, 3, pag["totalPages"])

	resp, body = e.do(t, http.MethodGet, "/api/activities?search=PEDIDO%2012", tokenForRole(t, "user"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["data"].(map[string]any)["pagination"].(map[string]any)["total"])

	// MaxOpenConns(1): si un cliente no se liberara, esta petición se bloquearía.
	resp, body = e.do(t, http.MethodGet, "/api/health", tokenForRole(t, "user"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "connected", body["database"])

	resp, body = e.do(t, http.MethodGet, "/api/test-db", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["counts"].(map[string]any)["users"])
}
