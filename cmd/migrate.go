package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"salina-hive/internal/db"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply the embedded schema migrations to the database at PSQL_ADDRESS.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Ledger.UseMemory() {
			return errors.New("migrate requires LEDGER_BACKEND=postgres")
		}
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}
