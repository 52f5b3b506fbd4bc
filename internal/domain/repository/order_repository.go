package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

// OrderRepository define el puerto de lectura para Order.
type OrderRepository interface {
	List(ctx context.Context, q query.Query) ([]*entity.Order, error)
	Count(ctx context.Context, q query.Query) (int, error)
}
