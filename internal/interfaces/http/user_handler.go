package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
)

// UserHandler administración de usuarios.
type UserHandler struct {
	clients ports.ClientProvider
	v       *validation.Validator
}

// NewUserHandler construye el handler.
func NewUserHandler(clients ports.ClientProvider, v *validation.Validator) *UserHandler {
	return &UserHandler{clients: clients, v: v}
}

// UpdateRole godoc
// @Summary      Cambiar rol de usuario
// @Description  Solo admin. Registra una actividad role_updated.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateRoleRequest  true  "admin | manager | user"
// @Success      200  {object}  dto.SuccessResponse{data=dto.UserResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if err := h.v.Struct(in); err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		out, err := usecase.NewUserUseCase(db.Repos().Users, db).UpdateRole(c.UserContext(), GetUserID(c), c.Params("id"), in.Role)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(out))
	})
}
