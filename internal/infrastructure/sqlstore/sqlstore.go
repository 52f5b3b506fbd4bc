// Package sqlstore implementa los repositorios sobre database/sql, comunes a
// PostgreSQL y SQLite. Lo único que cambia entre motores es el Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"strings"
)

// Querier es lo mínimo que necesitan los repositorios. Lo cumplen *sql.DB, *sql.Conn y *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// queryRow ejecuta stmt y escanea la primera fila en dest. Sin filas devuelve sql.ErrNoRows.
func queryRow(ctx context.Context, q Querier, stmt string, args []any, dest ...any) error {
	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	return rows.Close()
}

// Dialect diferencias de SQL entre motores.
type Dialect struct {
	Name string
	// Placeholder devuelve el marcador del n-ésimo argumento (1-based).
	Placeholder func(n int) string
	// IsUniqueViolation reconoce el error de constraint único del driver.
	IsUniqueViolation func(err error) bool
	// Fold función SQL que pasa una columna a minúsculas igual que query.Fold.
	// Vacío equivale a LOWER.
	Fold string
}

// Params devuelve "p1, p2, ..., pn" para un INSERT.
func (d Dialect) Params(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.Placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}

func (d Dialect) fold(col string) string {
	fn := d.Fold
	if fn == "" {
		fn = "LOWER"
	}
	return fn + "(" + col + ")"
}

func (d Dialect) uniqueViolation(err error) bool {
	return d.IsUniqueViolation != nil && d.IsUniqueViolation(err)
}
