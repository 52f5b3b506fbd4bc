package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// HealthHandler salud, diagnóstico de base de datos e información de la API.
type HealthHandler struct {
	clients ports.ClientProvider
	info    dto.APIInfo
}

// NewHealthHandler construye el handler.
func NewHealthHandler(clients ports.ClientProvider, info dto.APIInfo) *HealthHandler {
	return &HealthHandler{clients: clients, info: info}
}

// Health godoc
// @Summary      Salud de la API
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Param        x-database-type  header  string  false  "postgres | sqlite"
// @Success      200  {object}  dto.HealthResponse
// @Failure      500  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	db := clientFor(c, h.clients)
	defer db.Disconnect() //nolint:errcheck
	resp, ok := usecase.NewDiagnosticsUseCase(db).Health(c.UserContext())
	status := fiber.StatusOK
	if !ok {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(resp)
}

// TestDB godoc
// @Summary      Diagnóstico de base de datos
// @Description  Cuenta usuarios, tareas y pedidos. En fallo devuelve el error con su traza.
// @Tags         diagnostics
// @Produce      json
// @Param        x-database-type  header  string  false  "postgres | sqlite"
// @Success      200  {object}  dto.TestDBResponse
// @Failure      500  {object}  dto.TestDBFailure
// @Router       /api/test-db [get]
func (h *HealthHandler) TestDB(c *fiber.Ctx) error {
	db := clientFor(c, h.clients)
	defer db.Disconnect() //nolint:errcheck
	ok, fail := usecase.NewDiagnosticsUseCase(db).TestDB(c.UserContext())
	if fail != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fail)
	}
	return c.JSON(ok)
}

// Info godoc
// @Summary      Información de la API
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse{data=dto.APIInfo}
// @Router       /api [get]
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.info))
}
