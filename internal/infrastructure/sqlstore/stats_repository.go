package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el repositorio de agregados.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Counts devuelve el total de filas por entidad en una sola consulta.
func (r *StatsRepo) Counts(ctx context.Context) (*entity.Counts, error) {
	const stmt = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM activities)`
	var c entity.Counts
	if err := queryRow(ctx, r.q, stmt, nil, &c.Users, &c.Tasks, &c.Orders, &c.Documents, &c.Activities); err != nil {
		return nil, fmt.Errorf("counts: %w", err)
	}
	return &c, nil
}
