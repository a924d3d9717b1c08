package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crestprop/lease_ledger_app/internal/core/services"
	"github.com/crestprop/lease_ledger_app/internal/platform/config"
	"github.com/crestprop/lease_ledger_app/internal/repositories/database/pgsql"
	"github.com/crestprop/lease_ledger_app/internal/worker"
	"github.com/crestprop/lease_ledger_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcs := services.NewContainer(repos, cfg)

	srv, err := worker.NewServer(worker.ServerConfig{
		RedisAddr:   cfg.RedisAddr,
		Concurrency: cfg.WorkerConcurrency,
		InvoiceCron: cfg.InvoiceCron,
		Invoicing:   worker.NewInvoicingHandler(svcs.LeaseInvoice, logger),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to build worker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Worker starting",
		slog.String("redis_addr", cfg.RedisAddr),
		slog.Int("concurrency", cfg.WorkerConcurrency))

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}
