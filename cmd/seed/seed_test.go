package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func TestSeed_SQLiteIdempotente(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "seed.db")})
	require.NoError(t, err)
	defer db.Close()
	_, err = sqlite.Migrate(ctx, db)
	require.NoError(t, err)

	target := database.Target{DB: db, Dialect: sqlite.Dialect}
	opt := seedOptions{Password: "demo12345", Tasks: 6, Orders: 4, Now: time.Now().UTC().Truncate(time.Second)}

	require.NoError(t, seed(ctx, target, logger.Nop(), opt))
	require.NoError(t, seed(ctx, target, logger.Nop(), opt), "segunda corrida no duplica")

	counts, err := sqlstore.NewStatsRepository(db).Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Users)
	assert.Equal(t, 6, counts.Tasks)
	assert.Equal(t, 4, counts.Orders)
	assert.Equal(t, 3, counts.Documents)
	assert.Equal(t, 3+6+4+3, counts.Activities)
}
