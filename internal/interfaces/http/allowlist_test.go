package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_RutasPublicas(t *testing.T) {
	a := NewAllowList(false)

	for _, p := range []string{"/api/auth/login", "/api/auth", "/auth/signin", "/static/app.css", "/favicon.ico"} {
		assert.True(t, a.Allowed(p), p)
	}
	for _, p := range []string{"/api/activities", "/api/authors", "/api", "/", "/dashboard", "/api/test-db"} {
		assert.False(t, a.Allowed(p), p)
	}
}

func TestAllowList_Diagnosticos(t *testing.T) {
	on := NewAllowList(true)
	off := NewAllowList(false)

	for _, p := range []string{"/api/test-db", "/api/todos", "/api/todo-lists/1", "/test-auth.html"} {
		assert.True(t, on.Allowed(p), p)
		assert.False(t, off.Allowed(p), p)
		assert.True(t, off.IsDiagnostic(p), p)
	}
	assert.False(t, on.IsDiagnostic("/api/auth/login"))
}

func TestAllowList_NoSeEvadeConPuntos(t *testing.T) {
	a := NewAllowList(true)
	assert.False(t, a.Allowed("/api/auth/../activities"))
	assert.False(t, a.Allowed("/static/../../api/tasks"))
	assert.True(t, a.Allowed("/api/test-db/"))
}
