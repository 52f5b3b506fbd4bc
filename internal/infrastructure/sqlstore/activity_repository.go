package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository (usable con DB, Conn o Tx).
type ActivityRepo struct {
	q Querier
	d Dialect
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(q Querier, d Dialect) *ActivityRepo {
	return &ActivityRepo{q: q, d: d}
}

// List devuelve la página pedida con los datos públicos del autor.
func (r *ActivityRepo) List(ctx context.Context, q query.Query) ([]*entity.ActivityWithUser, error) {
	c, err := CompileList(q, r.d, "a")
	if err != nil {
		return nil, err
	}
	stmt := `
		SELECT a.id, a.type, a.title, a.description, a.user_id, a.created_at,
			COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.image, '')
		FROM activities a
		LEFT JOIN users u ON u.id = a.user_id` + c.SQL
	rows, err := r.q.QueryContext(ctx, stmt, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.ActivityWithUser, 0)
	for rows.Next() {
		var a entity.ActivityWithUser
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.UserID, &a.CreatedAt,
			&a.UserName, &a.UserEmail, &a.UserImage); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Count cuenta las actividades que cumplen los filtros (sin paginación).
func (r *ActivityRepo) Count(ctx context.Context, q query.Query) (int, error) {
	c, err := CompileWhere(q, r.d, "a")
	if err != nil {
		return 0, err
	}
	var total int
	if err := queryRow(ctx, r.q, `SELECT COUNT(*) FROM activities a`+c.SQL, c.Args, &total); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return total, nil
}

// Create persiste una actividad.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	stmt := `INSERT INTO activities (id, type, title, description, user_id, created_at) VALUES (` + r.d.Params(6) + `)`
	if _, err := r.q.ExecContext(ctx, stmt, a.ID, a.Type, a.Title, a.Description, a.UserID, a.CreatedAt); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
