package database

import (
	"context"
	"database/sql"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
)

var (
	_ ports.DatabaseClient = (*Client)(nil)
	_ sqlstore.Querier     = (*Client)(nil)
)

// Client conexión dedicada de una petición. No es seguro para uso concurrente:
// vive dentro de un único handler.
type Client struct {
	backend Backend
	db      *sql.DB
	dialect sqlstore.Dialect
	conn    *sql.Conn
}

// Backend nombre del motor resuelto.
func (c *Client) Backend() string { return string(c.backend) }

// Connect toma una conexión del pool del driver. Si ya está conectado no hace nada.
func (c *Client) Connect(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return &domain.ConnectionError{Backend: c.Backend(), Cause: pkgerrors.WithStack(err)}
	}
	c.conn = conn
	return nil
}

// Disconnect devuelve la conexión al pool. Es seguro llamarlo varias veces o sin Connect.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	return conn.Close()
}

// Connected indica si el cliente tiene una conexión tomada.
func (c *Client) Connected() bool { return c.conn != nil }

// Ping comprueba que el motor responde a una consulta.
func (c *Client) Ping(ctx context.Context) error {
	rows, err := c.QueryContext(ctx, "SELECT 1")
	if err != nil {
		return c.connErr(err)
	}
	defer rows.Close()
	var one int
	if rows.Next() {
		if err := rows.Scan(&one); err != nil {
			return c.connErr(err)
		}
	}
	if err := rows.Err(); err != nil {
		return c.connErr(err)
	}
	return nil
}

func (c *Client) connErr(err error) error {
	if errors.Is(err, domain.ErrNotConnected) {
		return err
	}
	return &domain.ConnectionError{Backend: c.Backend(), Cause: pkgerrors.WithStack(err)}
}

// ExecContext implementa sqlstore.Querier sobre la conexión dedicada.
func (c *Client) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.conn == nil {
		return nil, domain.ErrNotConnected
	}
	return c.conn.ExecContext(ctx, query, args...)
}

// QueryContext implementa sqlstore.Querier sobre la conexión dedicada.
func (c *Client) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if c.conn == nil {
		return nil, domain.ErrNotConnected
	}
	return c.conn.QueryContext(ctx, query, args...)
}

// Repos repositorios atados a la conexión del cliente.
func (c *Client) Repos() repository.Set {
	return repos(c, c.dialect)
}

// InTx ejecuta fn dentro de una transacción sobre la conexión dedicada.
func (c *Client) InTx(ctx context.Context, fn func(repository.Set) error) error {
	if c.conn == nil {
		return domain.ErrNotConnected
	}
	return sqlstore.RunInTx(ctx, c.conn, func(tx sqlstore.Querier) error {
		return fn(repos(tx, c.dialect))
	})
}

func repos(q sqlstore.Querier, d sqlstore.Dialect) repository.Set {
	return repository.Set{
		Users:      sqlstore.NewUserRepository(q, d),
		Tasks:      sqlstore.NewTaskRepository(q, d),
		Orders:     sqlstore.NewOrderRepository(q, d),
		Documents:  sqlstore.NewDocumentRepository(q, d),
		Activities: sqlstore.NewActivityRepository(q, d),
		Stats:      sqlstore.NewStatsRepository(q),
	}
}
