package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"salina-hive/internal/db"
)

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Uint16("fee-bps", 250, "Platform fee used if the platform is not yet initialized")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo data",
	Long: `Initialize the platform if needed, fund random accounts and open demo
campaigns with donations. The generated keys are printed so a client can
act as the seeded accounts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Ledger.UseMemory() {
			return errors.New("seed requires LEDGER_BACKEND=postgres, use serve --seed for the memory backend")
		}
		store, closeStore, err := openLedger(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		svc, err := newUseCase(cfg, store, logger)
		if err != nil {
			return err
		}
		feeBps, _ := cmd.Flags().GetUint16("fee-bps")
		res, err := db.Seed(cmd.Context(), svc, feeBps, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "authority %s\n", res.Authority)
		for _, k := range res.Creators {
			fmt.Fprintf(out, "creator   %s\n", k)
		}
		for _, k := range res.Donors {
			fmt.Fprintf(out, "donor     %s\n", k)
		}
		logger.Info("seed complete", slog.Int("campaigns", len(res.Creators)), slog.Int("donors", len(res.Donors)))
		return nil
	},
}
