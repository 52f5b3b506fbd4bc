package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// DashboardHandler métricas del tablero.
type DashboardHandler struct {
	clients ports.ClientProvider
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(clients ports.ClientProvider) *DashboardHandler {
	return &DashboardHandler{clients: clients}
}

// Stats godoc
// @Summary      Métricas del tablero
// @Description  Totales por entidad y las 5 actividades más recientes.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse{data=dto.DashboardStatsDTO}
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		repos := db.Repos()
		out, err := usecase.NewDashboardUseCase(repos.Stats, repos.Activities).Stats(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(out))
	})
}
