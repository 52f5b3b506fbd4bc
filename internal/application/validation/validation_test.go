package validation_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
)

func TestListRequest_Defaults(t *testing.T) {
	v := validation.New(10, 100)
	p, err := v.ListRequest(map[string]string{"foo": "bar"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Empty(t, p.Search)
}

func TestListRequest_LimitSeRecortaAlMaximo(t *testing.T) {
	v := validation.New(10, 100)
	p, err := v.ListRequest(map[string]string{"limit": "500", "page": "2"})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 2, p.Page)
}

func TestListRequest_TodasLasViolaciones(t *testing.T) {
	v := validation.New(10, 100)
	_, err := v.ListRequest(map[string]string{
		"page":   "0",
		"limit":  "abc",
		"search": strings.Repeat("x", 201),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 3)
	assert.Equal(t, domain.Violation{Field: "page", Rule: "min", Message: "debe ser mayor o igual a 1"}, verr.Violations[0])
	assert.Equal(t, "limit", verr.Violations[1].Field)
	assert.Equal(t, "integer", verr.Violations[1].Rule)
	assert.Equal(t, "search", verr.Violations[2].Field)
	assert.Equal(t, "max", verr.Violations[2].Rule)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListRequest_LimitNegativo(t *testing.T) {
	v := validation.New(10, 100)
	_, err := v.ListRequest(map[string]string{"limit": "-5"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Violations[0].Field)
}

func TestListRequest_PaginaFueraDeRango(t *testing.T) {
	v := validation.New(10, 100)

	_, err := v.ListRequest(map[string]string{"page": strconv.Itoa(math.MaxInt), "limit": "10"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "page", verr.Violations[0].Field)
	assert.Equal(t, "max", verr.Violations[0].Rule)

	// el límite depende del limit ya recortado
	_, err = v.ListRequest(map[string]string{"page": strconv.Itoa(math.MaxInt/100 + 2), "limit": "500"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "page", verr.Violations[0].Field)

	p, err := v.ListRequest(map[string]string{"page": strconv.Itoa(query.MaxPage(10)), "limit": "10"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Query(query.Tasks).Page.Skip(), 0)
}

func TestListRequest_RecortaEspacios(t *testing.T) {
	v := validation.New(10, 100)
	p, err := v.ListRequest(map[string]string{"search": "  invoice ", "status": " done "})
	require.NoError(t, err)
	assert.Equal(t, "invoice", p.Search)
	assert.Equal(t, "done", p.Status)
}

func TestListParams_Query(t *testing.T) {
	v := validation.New(10, 100)
	p, err := v.ListRequest(map[string]string{"status": "login", "page": "2", "limit": "10"})
	require.NoError(t, err)

	q := p.Query(query.Activities)
	require.Len(t, q.Where, 1)
	assert.Equal(t, query.Equals{Field: "type", Value: "login"}, q.Where[0])
	assert.Equal(t, 10, q.Page.Skip())
}

func TestNew_LimitesInvalidosUsanDefaults(t *testing.T) {
	v := validation.New(0, 0)
	p, err := v.ListRequest(nil)
	require.NoError(t, err)
	assert.Equal(t, validation.DefaultLimit, p.Limit)
}

type registerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager user"`
}

func TestStruct_UsaNombresJSON(t *testing.T) {
	v := validation.New(10, 100)
	err := v.Struct(registerBody{Email: "no-es-email", Password: "123", Role: "root"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 3)
	fields := []string{verr.Violations[0].Field, verr.Violations[1].Field, verr.Violations[2].Field}
	assert.Equal(t, []string{"email", "password", "role"}, fields)
	assert.Equal(t, "debe ser uno de: admin, manager, user", verr.Violations[2].Message)
}

func TestStruct_Valido(t *testing.T) {
	v := validation.New(10, 100)
	assert.NoError(t, v.Struct(registerBody{Email: "ana@example.com", Password: "12345678"}))
}
