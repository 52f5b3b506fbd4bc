package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total, page, limit, want int
	}{
		{0, 1, 10, 0},
		{1, 1, 10, 1},
		{10, 1, 10, 1},
		{11, 1, 10, 2},
		{25, 2, 10, 3},
		{100, 1, 100, 1},
		{7, 3, 1, 7},
	}
	for _, c := range cases {
		p := NewPagination(c.total, c.page, c.limit)
		assert.Equal(t, c.want, p.TotalPages, "total=%d limit=%d", c.total, c.limit)
		assert.Equal(t, c.page, p.Page)
		assert.Equal(t, c.limit, p.Limit)
	}
}

func TestEnvelopeJSON(t *testing.T) {
	b, err := json.Marshal(Fail("NOT_FOUND", "usuario no encontrado", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"usuario no encontrado","code":"NOT_FOUND"}`, string(b))

	b, err = json.Marshal(OK(map[string]int{"n": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"n":1}}`, string(b))
}
