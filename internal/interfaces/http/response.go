package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// ErrorHandler único punto de conversión de errores a envoltorio JSON. Los 5xx se
// registran con el detalle; al cliente solo llega un mensaje genérico.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)
		if status >= fiber.StatusInternalServerError {
			ev := log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path())
			var ce *domain.ConnectionError
			if errors.As(err, &ce) {
				ev = ev.Str("backend", ce.Backend)
			}
			ev.Msg("error en petición")
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
		ce   *domain.ConnectionError
		ferr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.Fail("VALIDATION_ERROR", "parámetros inválidos", verr.Violations)
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.Fail("VALIDATION_ERROR", err.Error(), nil)
	case errors.As(err, &nf):
		return fiber.StatusNotFound, dto.Fail("NOT_FOUND", nf.Error(), nil)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.Fail("NOT_FOUND", err.Error(), nil)
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.Fail("UNAUTHORIZED", "credenciales inválidas", nil)
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.Fail("FORBIDDEN", "acceso denegado", nil)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.Fail("EMAIL_EXISTS", err.Error(), nil)
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.Fail("CONFLICT", err.Error(), nil)
	case errors.As(err, &ce):
		return fiber.StatusInternalServerError, dto.Fail("DATABASE_UNAVAILABLE", "no se pudo conectar a la base de datos", nil)
	case errors.As(err, &ferr):
		return ferr.Code, dto.Fail(statusCode(ferr.Code), ferr.Message, nil)
	}
	return fiber.StatusInternalServerError, dto.Fail("INTERNAL", "error interno del servidor", nil)
}

// statusCode "Not Found" -> "NOT_FOUND".
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

func invalidBody(err error) error {
	return &domain.ValidationError{Violations: []domain.Violation{
		{Field: "body", Rule: "json", Message: "cuerpo JSON inválido: " + err.Error()},
	}}
}
