package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes sin cargar datos",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTarget(cmd.Context(), func(_ context.Context, _ database.Target, log *logger.Logger) error {
			log.Info().Msg("migraciones al día")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
