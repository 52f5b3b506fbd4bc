package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Clients   ports.ClientProvider
	Validator *validation.Validator
	Reports   ports.ActivityReportGenerator
	JWT       auth.JWTConfig
	Cookie    CookieConfig
	AllowList *AllowList
	Info      dto.APIInfo
	Log       *logger.Logger
	// Docs se monta antes del gate de sesión (p. ej. swagger). Opcional.
	Docs fiber.Handler
}

// NewApp crea la app Fiber con el ErrorHandler del envoltorio JSON.
func NewApp(name string, log *logger.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler(log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Named("http")))
	if deps.Docs != nil {
		app.Use(deps.Docs)
	}
	app.Use(SessionGate(SessionConfig{
		Secret:     deps.JWT.Secret,
		CookieName: deps.Cookie.Name,
		AllowList:  deps.AllowList,
		Log:        log.Named("session"),
	}))

	api := app.Group("/api")

	health := NewHealthHandler(deps.Clients, deps.Info)
	api.Get("/", health.Info)
	api.Get("/health", health.Health)
	api.Get("/test-db", health.TestDB)

	// Auth (público por AllowList)
	authHandler := NewAuthHandler(deps.Clients, deps.Validator, deps.JWT, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	activityHandler := NewActivityHandler(deps.Clients, deps.Validator, deps.Reports)
	api.Get("/activities", activityHandler.List)
	api.Post("/activities", activityHandler.Create)
	api.Get("/activities/report", activityHandler.Report)

	lists := NewListHandler(deps.Clients, deps.Validator)
	api.Get("/tasks", lists.Tasks)
	api.Get("/orders", lists.Orders)
	api.Get("/documents", lists.Documents)

	api.Get("/dashboard/stats", NewDashboardHandler(deps.Clients).Stats)

	users := NewUserHandler(deps.Clients, deps.Validator)
	api.Patch("/users/:id/role", RequireRole("admin"), users.UpdateRole)
}

// Endpoints rutas publicadas en GET /api.
func Endpoints() []string {
	return []string{
		"GET /api",
		"GET /api/health",
		"GET /api/test-db",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/auth/session",
		"GET /api/activities",
		"POST /api/activities",
		"GET /api/activities/report",
		"GET /api/tasks",
		"GET /api/orders",
		"GET /api/documents",
		"GET /api/dashboard/stats",
		"PATCH /api/users/:id/role",
	}
}
