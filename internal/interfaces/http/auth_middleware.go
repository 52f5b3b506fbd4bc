package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID          = "user_id"
	LocalEmail           = "email"
	LocalRole            = "role"
	LocalSimulatedUserID = "simulated_user_id"
)

// HeaderUserID cabecera de identidad simulada. Solo se toma en rutas de diagnóstico.
const HeaderUserID = "x-user-id"

const signInPath = "/auth/signin"

// SessionConfig configuración del gate de sesión.
type SessionConfig struct {
	Secret     string
	CookieName string
	AllowList  *AllowList
	Log        *logger.Logger
}

// SessionGate exige sesión válida (Bearer o cookie) salvo en rutas de la AllowList.
// Rechaza antes de llegar a cualquier handler: /api/* recibe 401 JSON y el resto
// una redirección a la página de login con callbackUrl.
// En rutas públicas carga la identidad si hay un token válido, sin exigirlo.
func SessionGate(cfg SessionConfig) fiber.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	if cfg.AllowList == nil {
		cfg.AllowList = NewAllowList(false)
	}
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if cfg.AllowList.Allowed(path) {
			if token, ok := extractToken(c, cfg.CookieName); ok && token != "" {
				if id, err := jwt.Parse(cfg.Secret, token); err == nil {
					setIdentity(c, id)
				}
			}
			if cfg.AllowList.IsDiagnostic(path) && GetUserID(c) == "" {
				if uid := strings.TrimSpace(c.Get(HeaderUserID)); uid != "" {
					c.Locals(LocalSimulatedUserID, uid)
					log.Warn().Str("path", path).Str("simulated_user_id", uid).Msg("identidad simulada en ruta de diagnóstico")
				}
			}
			return c.Next()
		}

		token, ok := extractToken(c, cfg.CookieName)
		if !ok {
			return reject(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		if token == "" {
			return reject(c, "MISSING_TOKEN", "sesión requerida")
		}
		id, err := jwt.Parse(cfg.Secret, token)
		if err != nil {
			return reject(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		setIdentity(c, id)
		return c.Next()
	}
}

// extractToken toma el token del header Authorization o, si no viene, de la cookie.
// ok=false si el header existe pero no tiene formato Bearer.
func extractToken(c *fiber.Ctx, cookieName string) (string, bool) {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookieName == "" {
		return "", true
	}
	return c.Cookies(cookieName), true
}

func reject(c *fiber.Ctx, code, msg string) error {
	if isAPI(c.Path()) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(code, msg, nil))
	}
	return c.Redirect(signInPath+"?callbackUrl="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}

func isAPI(p string) bool {
	p = clean(p)
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

func setIdentity(c *fiber.Ctx, id jwt.Identity) {
	c.Locals(LocalUserID, id.UserID)
	c.Locals(LocalEmail, id.Email)
	c.Locals(LocalRole, id.Role)
}

// RequireRole autoriza solo a los roles indicados. Va después de SessionGate.
// Sin rol en la sesión: 401 MISSING_ROLE. Rol no permitido: 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_ROLE", "la sesión no tiene rol", nil))
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "rol sin permiso para este recurso", nil))
	}
}

// GetUserID devuelve el UserID de la sesión (vacío si no hay).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail devuelve el email de la sesión.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSimulatedUserID devuelve el x-user-id recibido en una ruta de diagnóstico.
func GetSimulatedUserID(c *fiber.Ctx) string { return localString(c, LocalSimulatedUserID) }

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
