package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"comments-api/internal/config"
	"comments-api/internal/infrastructure/database"
	"comments-api/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Long:      "Runs the embedded SQL migrations against the PostgreSQL database described by the DB_* variables.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(database.Direction(args[0]))
		},
	}
}

func runMigrate(dir database.Direction) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel)

	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=%s", config.StoreDriverPostgres)
	}

	if err := database.Migrate(cfg.DatabaseURL(), dir); err != nil {
		return err
	}

	logger.Info("Migrations applied", slog.String("direction", string(dir)))
	return nil
}
