package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. total se guarda como NUMERIC (postgres) o TEXT (sqlite)
// y se escanea a decimal.Decimal.
type OrderRepo struct {
	q Querier
	d Dialect
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(q Querier, d Dialect) *OrderRepo {
	return &OrderRepo{q: q, d: d}
}

// List devuelve la página pedida.
func (r *OrderRepo) List(ctx context.Context, q query.Query) ([]*entity.Order, error) {
	c, err := CompileList(q, r.d, "")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, order_number, customer_name, description, status, total, created_by, created_at, updated_at
		FROM orders`+c.SQL, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Description, &o.Status,
			&o.Total, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count cuenta los pedidos que cumplen los filtros.
func (r *OrderRepo) Count(ctx context.Context, q query.Query) (int, error) {
	return count(ctx, r.q, r.d, "orders", q)
}

// Create persiste un pedido (lo usa el seeder). order_number duplicado → domain.ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	stmt := `INSERT INTO orders (id, order_number, customer_name, description, status, total, created_by, created_at, updated_at)
		VALUES (` + r.d.Params(9) + `)`
	_, err := r.q.ExecContext(ctx, stmt, o.ID, o.OrderNumber, o.CustomerName, o.Description, o.Status,
		o.Total.StringFixed(2), o.CreatedBy, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if r.d.uniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
