package main

import (
	"fmt"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/config"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/database"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.InitConfig(configPath)

		zapLogger, err := logger.InitZapLoggerFromConfig(configs)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer zapLogger.Close()
		logger.SetGlobalLogger(zapLogger)

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		applied, err := database.Migrate(cmd.Context(), postgresClient.GetDB())
		if err != nil {
			return err
		}

		zapLogger.Info("Migrations complete", logger.Int("applied", applied))
		return nil
	},
}
