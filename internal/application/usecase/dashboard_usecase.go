package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dashboardRecentActivities = 5 // actividades en el widget del dashboard

// DashboardUseCase arma el resumen del dashboard. Las consultas van en serie:
// comparten la única conexión del cliente de la petición.
type DashboardUseCase struct {
	stats      repository.StatsRepository
	activities *ActivityUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, activities repository.ActivityRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, activities: NewActivityUseCase(activities)}
}

// Stats devuelve los totales por entidad y las últimas actividades.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	c, err := uc.stats.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("totales: %w", err)
	}
	recent, err := uc.activities.Recent(ctx, dashboardRecentActivities)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsDTO{
		Counts: dto.CountsDTO{
			Users:      c.Users,
			Tasks:      c.Tasks,
			Orders:     c.Orders,
			Documents:  c.Documents,
			Activities: c.Activities,
		},
		RecentActivities: recent,
	}, nil
}
