package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// TxBeginner lo cumplen *sql.DB y *sql.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// RunInTx inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func RunInTx(ctx context.Context, b TxBeginner, fn func(tx Querier) error) error {
	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
