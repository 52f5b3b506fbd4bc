package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
)

// ListHandler listados paginados de tareas, pedidos y documentos.
type ListHandler struct {
	clients ports.ClientProvider
	v       *validation.Validator
}

// NewListHandler construye el handler.
func NewListHandler(clients ports.ClientProvider, v *validation.Validator) *ListHandler {
	return &ListHandler{clients: clients, v: v}
}

// Tasks godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "página"
// @Param        limit     query  int     false  "tamaño de página"
// @Param        status    query  string  false  "estado"
// @Param        priority  query  string  false  "prioridad"
// @Param        search    query  string  false  "texto a buscar"
// @Success      200  {object}  dto.SuccessResponse{data=dto.TaskListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tasks [get]
func (h *ListHandler) Tasks(c *fiber.Ctx) error {
	return h.list(c, func(db ports.DatabaseClient, p validation.ListParams) (any, error) {
		return usecase.NewTaskUseCase(db.Repos().Tasks).List(c.UserContext(), p)
	})
}

// Orders godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "página"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        status  query  string  false  "estado"
// @Param        search  query  string  false  "número o cliente"
// @Success      200  {object}  dto.SuccessResponse{data=dto.OrderListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *ListHandler) Orders(c *fiber.Ctx) error {
	return h.list(c, func(db ports.DatabaseClient, p validation.ListParams) (any, error) {
		return usecase.NewOrderUseCase(db.Repos().Orders).List(c.UserContext(), p)
	})
}

// Documents godoc
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "página"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        status  query  string  false  "estado"
// @Param        type    query  string  false  "tipo de documento"
// @Param        search  query  string  false  "texto a buscar"
// @Success      200  {object}  dto.SuccessResponse{data=dto.DocumentListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents [get]
func (h *ListHandler) Documents(c *fiber.Ctx) error {
	return h.list(c, func(db ports.DatabaseClient, p validation.ListParams) (any, error) {
		return usecase.NewDocumentUseCase(db.Repos().Documents).List(c.UserContext(), p)
	})
}

// list valida antes de tocar la base de datos.
func (h *ListHandler) list(c *fiber.Ctx, run func(ports.DatabaseClient, validation.ListParams) (any, error)) error {
	p, err := h.v.ListRequest(c.Queries())
	if err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		out, err := run(db, p)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(out))
	})
}
