package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title                      Gestión API
// @version                    1.0.0
// @description                Tareas, pedidos, documentos y feed de actividades sobre PostgreSQL o SQLite (cabecera x-database-type).
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("default_backend", cfg.DB.Default).
		Msg("iniciando aplicación")

	ctx := context.Background()
	engines, err := database.OpenEngines(ctx, cfg.DB, log.Named("database"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir bases de datos")
	}
	defer engines.Close()

	allow := httpRouter.NewAllowList(cfg.Auth.AllowDiagnostics)
	if allow.DiagnosticsEnabled() {
		log.Warn().
			Strs("paths", httpRouter.DiagnosticPaths()).
			Msg("rutas de diagnóstico sin sesión (AUTH_ALLOW_DIAGNOSTICS=true); no usar en producción")
	}

	backends := make([]string, 0, 2)
	for _, b := range engines.Adapter.Backends() {
		backends = append(backends, b.String())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	var docs fiber.Handler
	if _, err := os.Stat(swaggerFile); err == nil {
		docs = swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Gestión API",
		})
	}

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		Clients:   engines.Adapter,
		Validator: validation.New(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit),
		Reports:   infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Cookie:    httpRouter.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.App.IsProduction()},
		AllowList: allow,
		Info: dto.APIInfo{
			Name:      cfg.App.Name,
			Version:   cfg.App.Version,
			Backends:  backends,
			Default:   engines.Adapter.Default().String(),
			Endpoints: httpRouter.Endpoints(),
		},
		Log:  log,
		Docs: docs,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
