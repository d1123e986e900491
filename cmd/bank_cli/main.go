package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/simple_banking_system/internal/core/services"
	"github.com/SscSPs/simple_banking_system/internal/handlers"
	"github.com/SscSPs/simple_banking_system/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with the menu on stdout.
	logger := slog.New(newLogHandler(cfg))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := services.NewContainer(cfg)
	console := handlers.NewConsoleHandler(container.Bank, os.Stdin, os.Stdout,
		handlers.WithLogger(logger),
		handlers.WithCurrencySymbol(cfg.CurrencySymbol),
	)

	logger.Info("Console session starting",
		slog.String("default_withdrawal_limit", cfg.DefaultWithdrawalLimit.StringFixed(2)),
		slog.Int("default_max_withdrawals", cfg.DefaultMaxWithdrawals))

	if err := console.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Console session interrupted")
			return
		}
		logger.Error("Console session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogHandler(cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}
