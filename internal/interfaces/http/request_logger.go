package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status, latencia, backend y request id.
// Resuelve el error de la cadena aquí para que el status registrado sea el definitivo.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("backend", localString(c, LocalBackend)).
			Msg("http")
		return nil
	}
}
