package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// StatsRepository consultas agregadas (solo lectura) para diagnóstico y dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (*entity.Counts, error)
}
