package postgres

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
)

// Dialect placeholders $n y detección de unique_violation (23505).
var Dialect = sqlstore.Dialect{
	Name:              "postgres",
	Placeholder:       func(n int) string { return "$" + strconv.Itoa(n) },
	IsUniqueViolation: isUniqueViolation,
	Fold:              "LOWER",
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
