package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository.
type DocumentRepo struct {
	q Querier
	d Dialect
}

// NewDocumentRepository construye el adaptador de lectura de documentos.
func NewDocumentRepository(q Querier, d Dialect) *DocumentRepo {
	return &DocumentRepo{q: q, d: d}
}

// List devuelve la página pedida.
func (r *DocumentRepo) List(ctx context.Context, q query.Query) ([]*entity.Document, error) {
	c, err := CompileList(q, r.d, "")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, title, description, type, url, owner_id, created_at, updated_at
		FROM documents`+c.SQL, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Document, 0)
	for rows.Next() {
		var doc entity.Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Description, &doc.Type, &doc.URL,
			&doc.OwnerID, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}

// Count cuenta los documentos que cumplen los filtros.
func (r *DocumentRepo) Count(ctx context.Context, q query.Query) (int, error) {
	return count(ctx, r.q, r.d, "documents", q)
}

// Create persiste un documento (lo usa el seeder).
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	stmt := `INSERT INTO documents (id, title, description, type, url, owner_id, created_at, updated_at)
		VALUES (` + r.d.Params(8) + `)`
	if _, err := r.q.ExecContext(ctx, stmt, doc.ID, doc.Title, doc.Description, doc.Type, doc.URL,
		doc.OwnerID, doc.CreatedAt, doc.UpdatedAt); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}
