package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "salina-hive/internal/adapter/http"
	"salina-hive/internal/adapter/usecase"
	"salina-hive/internal/db"
	"salina-hive/internal/metrics"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("seed", false, "Fill the ledger with demo data before serving")
	serveCmd.Flags().Uint16("seed-fee-bps", 250, "Platform fee used when seeding initializes the platform")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API. The ledger backend, optional migrations and the
faucet endpoint are selected through LEDGER_* and PSQL_* variables. On
SIGINT or SIGTERM the server drains in-flight requests and exits.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe loads configuration, opens the ledger store, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server and exits with 128+signal.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, closeStore, err := openLedger(ctx, cfg, logger)
	if err != nil {
		logger.Error("ledger store error", slog.Any("error", err))
		return err
	}
	defer closeStore()

	m := metrics.New()
	svc, err := newUseCase(cfg, store, logger, usecase.WithMetrics(m))
	if err != nil {
		return err
	}
	logger.Info("ledger ready",
		slog.String("backend", cfg.Ledger.Backend),
		slog.String("platform", svc.PlatformAddress().String()))

	if seed, _ := cmd.Flags().GetBool("seed"); seed {
		feeBps, _ := cmd.Flags().GetUint16("seed-fee-bps")
		if _, err = db.Seed(ctx, svc, feeBps, logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	handler := httpadapter.NewHandler(svc, logger,
		httpadapter.WithMetricsHandler(m.Handler()),
		httpadapter.WithFaucet(cfg.Ledger.FaucetEnabled))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var sig os.Signal
	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return err
	case sig = <-quit:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped", slog.String("signal", sig.String()))
	return exitError{code: 128 + int(sig.(syscall.Signal))}
}
