package ports

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// ActivityReportGenerator genera el PDF del feed de actividades.
type ActivityReportGenerator interface {
	GenerateActivityReport(ctx context.Context, report dto.ActivityReport) ([]byte, error)
}
