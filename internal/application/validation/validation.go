// Package validation valida parámetros de listado y cuerpos de petición. Todas las
// violaciones se reportan juntas en un *domain.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

// Límites por defecto cuando no se configuran.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Validator envuelve validator.Validate con los límites de paginación de la app.
type Validator struct {
	v            *validator.Validate
	defaultLimit int
	maxLimit     int
}

// New construye el validador. Valores no positivos toman los límites por defecto.
func New(defaultLimit, maxLimit int) *Validator {
	if maxLimit < 1 {
		maxLimit = MaxLimit
	}
	if defaultLimit < 1 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	// los errores usan el nombre que ve el cliente (json o query), no el del campo Go
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return &Validator{v: v, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// ListParams parámetros de un listado ya validados y normalizados.
type ListParams struct {
	Page     int
	Limit    int
	Search   string `query:"search" validate:"max=200"`
	Status   string `query:"status" validate:"max=50"`
	Type     string `query:"type" validate:"max=50"`
	Priority string `query:"priority" validate:"max=50"`
}

// Query construye la descripción de consulta para el recurso.
func (p ListParams) Query(r query.Resource) query.Query {
	return query.Build(r, query.Params{
		Filters: map[string]string{"status": p.Status, "type": p.Type, "priority": p.Priority},
		Search:  p.Search,
		Page:    query.Page{Number: p.Page, Limit: p.Limit},
	})
}

// ListRequest valida los parámetros crudos de un listado. Claves desconocidas se ignoran.
// limit por encima del máximo se recorta al máximo; page y limit menores que 1 o no
// enteros son violaciones, igual que un page cuyo offset no cabe en int.
func (val *Validator) ListRequest(raw map[string]string) (ListParams, error) {
	var violations []domain.Violation

	page, v := positiveInt(raw, "page", 1)
	violations = append(violations, v...)
	limit, v := positiveInt(raw, "limit", val.defaultLimit)
	violations = append(violations, v...)
	if limit > val.maxLimit {
		limit = val.maxLimit
	}
	if page > query.MaxPage(limit) {
		violations = append(violations, domain.Violation{
			Field: "page", Rule: "max", Message: "debe ser menor o igual a " + strconv.Itoa(query.MaxPage(limit)),
		})
	}

	p := ListParams{
		Page:     page,
		Limit:    limit,
		Search:   strings.TrimSpace(raw["search"]),
		Status:   strings.TrimSpace(raw["status"]),
		Type:     strings.TrimSpace(raw["type"]),
		Priority: strings.TrimSpace(raw["priority"]),
	}
	if err := val.v.Struct(p); err != nil {
		violations = append(violations, toViolations(err)...)
	}

	if len(violations) > 0 {
		return ListParams{}, &domain.ValidationError{Violations: violations}
	}
	return p, nil
}

// Struct valida un DTO con tags `validate`.
func (val *Validator) Struct(s any) error {
	if err := val.v.Struct(s); err != nil {
		return &domain.ValidationError{Violations: toViolations(err)}
	}
	return nil
}

func positiveInt(raw map[string]string, field string, def int) (int, []domain.Violation) {
	s, ok := raw[field]
	s = strings.TrimSpace(s)
	if !ok || s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def, []domain.Violation{{Field: field, Rule: "integer", Message: "debe ser un número entero"}}
	}
	if n < 1 {
		return def, []domain.Violation{{Field: field, Rule: "min", Message: "debe ser mayor o igual a 1"}}
	}
	return n, nil
}

func toViolations(err error) []domain.Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.Violation{{Field: "", Rule: "invalid", Message: err.Error()}}
	}
	out := make([]domain.Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.Violation{Field: fe.Field(), Rule: fe.Tag(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "uuid", "uuid4":
		return "debe ser un UUID"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + fe.Param()
	case "url":
		return "debe ser una URL válida"
	}
	return "no cumple la regla " + fe.Tag()
}
