package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotConnected       = errors.New("cliente de base de datos no conectado")
)

// Violation describe una regla incumplida de un campo de entrada.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones de una petición (no solo la primera).
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "parámetros inválidos: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError indica que la entidad referenciada no existe.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " no encontrado"
	}
	return fmt.Sprintf("%s %q no encontrado", e.Resource, e.ID)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConnectionError indica que el motor de base de datos no es alcanzable.
// Cause conserva el error original (con stack trace cuando está disponible).
type ConnectionError struct {
	Backend string
	Cause   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("conexión a %s: %v", e.Backend, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// Trace devuelve el detalle completo de la causa (%+v incluye el stack de pkg/errors).
func (e *ConnectionError) Trace() string {
	if e.Cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.Cause)
}
