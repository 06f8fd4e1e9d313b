package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"salina-hive/internal/adapter/memory"
	"salina-hive/internal/adapter/postgres"
	"salina-hive/internal/adapter/usecase"
	"salina-hive/internal/config"
	"salina-hive/internal/core/port"
	"salina-hive/internal/db"
)

// loadConfig reads the environment and builds the process logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}

// openLedger opens the configured store backend. The returned close
// function releases it and is never nil.
func openLedger(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerStore, func(), error) {
	rent := cfg.Ledger.Rent()
	if cfg.Ledger.UseMemory() {
		logger.Warn("using in-memory ledger, state is lost on exit")
		return memory.NewLedgerStore(rent), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewLedgerStore(pool, rent), pool.Close, nil
}

func newUseCase(cfg config.Config, store port.LedgerStore, logger *slog.Logger, opts ...usecase.Option) (*usecase.HiveUseCase, error) {
	program, err := cfg.Ledger.Program()
	if err != nil {
		return nil, fmt.Errorf("program id: %w", err)
	}
	opts = append([]usecase.Option{usecase.WithLogger(logger)}, opts...)
	return usecase.NewHiveUseCase(store, program, opts...)
}
