package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
)

// ActivityHandler feed de actividades y su reporte PDF.
type ActivityHandler struct {
	clients ports.ClientProvider
	v       *validation.Validator
	reports ports.ActivityReportGenerator
}

// NewActivityHandler construye el handler.
func NewActivityHandler(clients ports.ClientProvider, v *validation.Validator, reports ports.ActivityReportGenerator) *ActivityHandler {
	return &ActivityHandler{clients: clients, v: v, reports: reports}
}

// List godoc
// @Summary      Listar actividades
// @Description  Paginado, más recientes primero. status filtra por tipo; search busca en título y descripción.
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "página (>=1)"
// @Param        limit   query  int     false  "tamaño de página (1..100)"
// @Param        status  query  string  false  "tipo de actividad"
// @Param        search  query  string  false  "texto a buscar"
// @Param        x-database-type  header  string  false  "postgres | sqlite"
// @Success      200  {object}  dto.SuccessResponse{data=dto.ActivityListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	p, err := h.v.ListRequest(c.Queries())
	if err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		out, err := usecase.NewActivityUseCase(db.Repos().Activities).List(c.UserContext(), p)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(out))
	})
}

// Create godoc
// @Summary      Registrar actividad
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateActivityRequest  true  "type, title, description"
// @Success      201  {object}  dto.SuccessResponse{data=dto.ActivityResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if err := h.v.Struct(in); err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		out, err := usecase.NewActivityUseCase(db.Repos().Activities).Create(c.UserContext(), GetUserID(c), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
	})
}

// Report godoc
// @Summary      Reporte PDF de actividades
// @Description  Mismos filtros y paginación que el listado.
// @Tags         activities
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        page    query  int     false  "página"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        status  query  string  false  "tipo de actividad"
// @Param        search  query  string  false  "texto a buscar"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities/report [get]
func (h *ActivityHandler) Report(c *fiber.Ctx) error {
	p, err := h.v.ListRequest(c.Queries())
	if err != nil {
		return err
	}
	var list *dto.ActivityListResponse
	err = withClient(c, h.clients, func(db ports.DatabaseClient) error {
		list, err = usecase.NewActivityUseCase(db.Repos().Activities).List(c.UserContext(), p)
		return err
	})
	if err != nil {
		return err
	}

	report := dto.ActivityReport{
		Title:       "Reporte de actividades",
		GeneratedAt: time.Now(),
		GeneratedBy: GetEmail(c),
		Filters:     reportFilters(p),
		Activities:  list.Activities,
		Pagination:  list.Pagination,
	}
	pdf, err := h.reports.GenerateActivityReport(c.UserContext(), report)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="actividades-p`+strconv.Itoa(p.Page)+`.pdf"`)
	return c.Send(pdf)
}

func reportFilters(p validation.ListParams) []string {
	var out []string
	add := func(k, v string) {
		if v != "" {
			out = append(out, k+"="+v)
		}
	}
	add("status", p.Status)
	add("type", p.Type)
	add("search", p.Search)
	return out
}
