package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository.
type TaskRepo struct {
	q Querier
	d Dialect
}

// NewTaskRepository construye el adaptador de lectura de tareas.
func NewTaskRepository(q Querier, d Dialect) *TaskRepo {
	return &TaskRepo{q: q, d: d}
}

// List devuelve la página pedida.
func (r *TaskRepo) List(ctx context.Context, q query.Query) ([]*entity.Task, error) {
	c, err := CompileList(q, r.d, "")
	if err != nil {
		return nil, err
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, title, description, status, priority, assignee_id, due_date, created_at, updated_at
		FROM tasks`+c.SQL, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Task, 0)
	for rows.Next() {
		var (
			t        entity.Task
			assignee sql.NullString
			due      sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&assignee, &due, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignee.Valid {
			t.AssigneeID = &assignee.String
		}
		if due.Valid {
			t.DueDate = &due.Time
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count cuenta las tareas que cumplen los filtros.
func (r *TaskRepo) Count(ctx context.Context, q query.Query) (int, error) {
	return count(ctx, r.q, r.d, "tasks", q)
}

// Create persiste una tarea (lo usa el seeder).
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	stmt := `INSERT INTO tasks (id, title, description, status, priority, assignee_id, due_date, created_at, updated_at)
		VALUES (` + r.d.Params(9) + `)`
	var due any
	if t.DueDate != nil {
		due = *t.DueDate
	}
	var assignee any
	if t.AssigneeID != nil {
		assignee = *t.AssigneeID
	}
	if _, err := r.q.ExecContext(ctx, stmt, t.ID, t.Title, t.Description, t.Status, t.Priority,
		assignee, due, t.CreatedAt, t.UpdatedAt); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func count(ctx context.Context, q Querier, d Dialect, table string, qry query.Query) (int, error) {
	c, err := CompileWhere(qry, d, "")
	if err != nil {
		return 0, err
	}
	var total int
	if err := queryRow(ctx, q, `SELECT COUNT(*) FROM `+table+c.SQL, c.Args, &total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
