package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain"
)

func TestErrorResponse_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&domain.ValidationError{Violations: []domain.Violation{{Field: "page"}}}, 400, "VALIDATION_ERROR"},
		{fmt.Errorf("repo: %w", &domain.NotFoundError{Resource: "usuario", ID: "1"}), 404, "NOT_FOUND"},
		{domain.ErrUnauthorized, 401, "UNAUTHORIZED"},
		{domain.ErrForbidden, 403, "FORBIDDEN"},
		{domain.ErrEmailAlreadyExists, 409, "EMAIL_EXISTS"},
		{domain.ErrDuplicate, 409, "CONFLICT"},
		{&domain.ConnectionError{Backend: "postgres", Cause: errors.New("refused")}, 500, "DATABASE_UNAVAILABLE"},
		{fiber.ErrNotFound, 404, "NOT_FOUND"},
		{fiber.ErrMethodNotAllowed, 405, "METHOD_NOT_ALLOWED"},
		{errors.New("pq: relation does not exist"), 500, "INTERNAL"},
	}
	for _, c := range cases {
		status, body := errorResponse(c.err)
		assert.Equal(t, c.status, status, c.err.Error())
		assert.Equal(t, c.code, body.Code, c.err.Error())
		assert.False(t, body.Success)
	}
}

func TestErrorResponse_NoFiltraDetalleInterno(t *testing.T) {
	_, body := errorResponse(errors.New("pq: password authentication failed for user app"))
	assert.Equal(t, "error interno del servidor", body.Error)

	_, body = errorResponse(&domain.ConnectionError{Backend: "postgres", Cause: errors.New("dial tcp 10.0.0.5:5432")})
	assert.NotContains(t, body.Error, "10.0.0.5")
}
