package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

// TaskRepository define el puerto de lectura para Task.
type TaskRepository interface {
	List(ctx context.Context, q query.Query) ([]*entity.Task, error)
	Count(ctx context.Context, q query.Query) (int, error)
}
