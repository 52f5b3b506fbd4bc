package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

// ActivityRepository define el puerto de persistencia para Activity.
// List aplica Where, OrderBy y Page de la query; Count ignora Page.
type ActivityRepository interface {
	List(ctx context.Context, q query.Query) ([]*entity.ActivityWithUser, error)
	Count(ctx context.Context, q query.Query) (int, error)
	Create(ctx context.Context, activity *entity.Activity) error
}
