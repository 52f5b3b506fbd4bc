package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

var (
	flagBackend  string
	flagPassword string
	flagTasks    int
	flagOrders   int
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga datos de demostración",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTarget(cmd.Context(), func(ctx context.Context, t database.Target, log *logger.Logger) error {
			return seed(ctx, t, log, seedOptions{
				Password: flagPassword,
				Tasks:    flagTasks,
				Orders:   flagOrders,
				Now:      time.Now().UTC(),
			})
		})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "postgres | sqlite (por defecto DB_DEFAULT)")
	rootCmd.Flags().StringVar(&flagPassword, "password", "demo12345", "password de los usuarios demo")
	rootCmd.Flags().IntVar(&flagTasks, "tasks", 20, "tareas a crear")
	rootCmd.Flags().IntVar(&flagOrders, "orders", 15, "pedidos a crear")
}

// withTarget carga configuración, abre solo el motor elegido (migrándolo) y lo entrega.
func withTarget(ctx context.Context, fn func(context.Context, database.Target, *logger.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	backend := cfg.DB.Default
	if flagBackend != "" {
		backend = flagBackend
	}
	b, ok := database.ParseBackend(backend)
	if !ok {
		return fmt.Errorf("backend inválido: %q", backend)
	}
	dbCfg := cfg.DB
	dbCfg.Default = b.String()
	dbCfg.AutoMigrate = true
	dbCfg.Postgres.Enabled = b == database.Postgres
	dbCfg.SQLite.Enabled = b == database.SQLite

	engines, err := database.OpenEngines(ctx, dbCfg, log.Named("database"))
	if err != nil {
		return err
	}
	defer engines.Close()

	t, _ := engines.Target(b)
	return fn(ctx, t, log.Named("seed"))
}
