package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

// DocumentRepository define el puerto de lectura para Document.
type DocumentRepository interface {
	List(ctx context.Context, q query.Query) ([]*entity.Document, error)
	Count(ctx context.Context, q query.Query) (int, error)
}
