package http

import (
	"path"
	"strings"
)

// Rutas públicas. Cada entrada cubre la ruta exacta y todo lo que cuelga de ella
// ("/api/auth" cubre "/api/auth/login" pero no "/api/authors").
var (
	publicPaths = []string{"/api/auth", "/auth", "/static", "/favicon.ico"}
	// Rutas de diagnóstico: solo públicas con AUTH_ALLOW_DIAGNOSTICS.
	diagnosticPaths = []string{"/api/test-db", "/api/todos", "/api/todo-lists", "/test-auth.html"}
)

// AllowList decide qué rutas no requieren sesión.
type AllowList struct {
	diagnostics bool
}

// NewAllowList construye la lista. allowDiagnostics habilita las rutas de diagnóstico.
func NewAllowList(allowDiagnostics bool) *AllowList {
	return &AllowList{diagnostics: allowDiagnostics}
}

// DiagnosticsEnabled indica si las rutas de diagnóstico son públicas.
func (a *AllowList) DiagnosticsEnabled() bool { return a.diagnostics }

// Allowed indica si p se sirve sin sesión.
func (a *AllowList) Allowed(p string) bool {
	p = clean(p)
	if matchAny(p, publicPaths) {
		return true
	}
	return a.diagnostics && matchAny(p, diagnosticPaths)
}

// IsDiagnostic indica si p es una ruta de diagnóstico (esté habilitada o no).
func (a *AllowList) IsDiagnostic(p string) bool {
	return matchAny(clean(p), diagnosticPaths)
}

// DiagnosticPaths rutas de diagnóstico, para el aviso de arranque.
func DiagnosticPaths() []string {
	return append([]string(nil), diagnosticPaths...)
}

func clean(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func matchAny(p string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
