package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
)

var testDialect = sqlstore.Dialect{Name: "sqlite", Placeholder: func(int) string { return "?" }}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestParseBackend(t *testing.T) {
	cases := map[string]Backend{"postgres": Postgres, " SQLite ": SQLite, "POSTGRES": Postgres}
	for in, want := range cases {
		got, ok := ParseBackend(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"", "mysql", "mongo"} {
		_, ok := ParseBackend(in)
		assert.False(t, ok, in)
	}
}

func TestNewAdapter_DefaultNoConfigurado(t *testing.T) {
	db, _ := newMockDB(t)
	_, err := NewAdapter(Postgres, map[Backend]Target{SQLite: {DB: db, Dialect: testDialect}})
	assert.Error(t, err)
}

func TestResolve_CabeceraDesconocidaUsaDefault(t *testing.T) {
	pg, _ := newMockDB(t)
	lite, _ := newMockDB(t)
	a, err := NewAdapter(Postgres, map[Backend]Target{
		Postgres: {DB: pg, Dialect: testDialect},
		SQLite:   {DB: lite, Dialect: testDialect},
	})
	require.NoError(t, err)

	assert.Equal(t, Postgres, a.Resolve(""))
	assert.Equal(t, Postgres, a.Resolve("mysql"))
	assert.Equal(t, SQLite, a.Resolve("sqlite"))
	assert.Equal(t, "sqlite", a.ClientFor("SQLITE").Backend())
	assert.Equal(t, []Backend{Postgres, SQLite}, a.Backends())
}

func TestResolve_MotorNoConfiguradoUsaDefault(t *testing.T) {
	lite, _ := newMockDB(t)
	a, err := NewAdapter(SQLite, map[Backend]Target{SQLite: {DB: lite, Dialect: testDialect}})
	require.NoError(t, err)

	assert.Equal(t, SQLite, a.Resolve("postgres"))
}

func TestClient_SinConectar(t *testing.T) {
	db, _ := newMockDB(t)
	c := &Client{backend: SQLite, db: db, dialect: testDialect}

	_, err := c.Repos().Activities.Count(context.Background(), query.Query{})
	assert.ErrorIs(t, err, domain.ErrNotConnected)
	assert.ErrorIs(t, c.Ping(context.Background()), domain.ErrNotConnected)
	assert.NoError(t, c.Disconnect(), "desconectar sin conectar no falla")
}

func TestClient_ConnectYDisconnectIdempotentes(t *testing.T) {
	db, mock := newMockDB(t)
	c := &Client{backend: SQLite, db: db, dialect: testDialect}
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx))
	first := c.conn
	require.NoError(t, c.Connect(ctx))
	assert.Same(t, first, c.conn, "el segundo Connect no toma otra conexión")

	mock.ExpectQuery(`^SELECT 1$`).WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	require.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Disconnect())
	require.NoError(t, c.Disconnect())
	assert.False(t, c.Connected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_ConnectFallaConTraza(t *testing.T) {
	db, _ := newMockDB(t)
	require.NoError(t, db.Close())
	c := &Client{backend: Postgres, db: db, dialect: testDialect}

	err := c.Connect(context.Background())
	var ce *domain.ConnectionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "postgres", ce.Backend)
	assert.Contains(t, ce.Trace(), "client.go")
}

func TestClient_PingFalla(t *testing.T) {
	db, mock := newMockDB(t)
	c := &Client{backend: SQLite, db: db, dialect: testDialect}
	require.NoError(t, c.Connect(context.Background()))
	defer c.Disconnect()

	mock.ExpectQuery(`^SELECT 1$`).WillReturnError(sql.ErrConnDone)
	err := c.Ping(context.Background())
	var ce *domain.ConnectionError
	assert.ErrorAs(t, err, &ce)
}

func TestClient_InTx(t *testing.T) {
	db, mock := newMockDB(t)
	c := &Client{backend: SQLite, db: db, dialect: testDialect}
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))
	defer c.Disconnect()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tasks`).WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))
	mock.ExpectCommit()

	var total int
	err := c.InTx(ctx, func(r repository.Set) error {
		var err error
		total, err = r.Tasks.Count(ctx, query.Query{})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}
