package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
)

// CookieConfig cookie de sesión que acompaña al token.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler registro, login, logout y sesión.
type AuthHandler struct {
	clients ports.ClientProvider
	v       *validation.Validator
	jwtCfg  auth.JWTConfig
	cookie  CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(clients ports.ClientProvider, v *validation.Validator, jwtCfg auth.JWTConfig, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{clients: clients, v: v, jwtCfg: jwtCfg, cookie: cookie}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.SuccessResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if err := h.v.Struct(in); err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		user, err := auth.NewAuthUseCase(db.Repos().Users, db, h.jwtCfg).RegisterUser(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el token y además lo deja en la cookie de sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SuccessResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if err := h.v.Struct(in); err != nil {
		return err
	}
	return withClient(c, h.clients, func(db ports.DatabaseClient) error {
		out, err := auth.NewAuthUseCase(db.Repos().Users, db, h.jwtCfg).Login(c.UserContext(), in)
		if err != nil {
			return err
		}
		c.Cookie(&fiber.Cookie{
			Name:     h.cookie.Name,
			Value:    out.Token,
			Path:     "/",
			Expires:  out.ExpiresAt,
			HTTPOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(dto.OK(out))
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la cookie de sesión. Los tokens emitidos siguen siendo válidos hasta expirar.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.OK(fiber.Map{"message": "sesión cerrada"}))
}

// Session godoc
// @Summary      Sesión actual
// @Description  data es null si no hay sesión válida.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=dto.SessionResponse}
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	uid := GetUserID(c)
	if uid == "" {
		return c.JSON(dto.OK(nil))
	}
	return c.JSON(dto.OK(dto.SessionResponse{UserID: uid, Email: GetEmail(c), Role: GetRole(c)}))
}
