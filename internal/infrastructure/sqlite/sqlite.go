// Package sqlite abre la base SQLite (driver puro Go modernc.org/sqlite) y define su dialecto.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/Gestion-api/pkg/config"
)

// foldFunc nombre de la función SQL registrada en el driver. LOWER de SQLite solo
// conoce ASCII: "Á" no pasaría a "á".
const foldFunc = "fold"

// Dialect placeholders ? y detección de UNIQUE constraint failed.
var Dialect = sqlstore.Dialect{
	Name:              "sqlite",
	Placeholder:       func(int) string { return "?" },
	IsUniqueViolation: isUniqueViolation,
	Fold:              foldFunc,
}

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

// fold aplica query.Fold a un TEXT/BLOB. NULL sigue siendo NULL.
func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return query.Fold(v), nil
	case []byte:
		return query.Fold(string(v)), nil
	default:
		return v, nil
	}
}

// Open abre (o crea) el archivo de la base. Los pragmas van en el DSN para que se
// apliquen a cada conexión nueva del pool, no solo a la primera.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Un solo escritor: SQLite serializa las escrituras de todos modos.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	if path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	q.Set("_time_format", "sqlite")
	return "file:" + path + "?" + q.Encode()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
