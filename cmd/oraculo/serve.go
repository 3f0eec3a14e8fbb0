package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GabrielNara/oraculo-libros/internal/app"
	"github.com/GabrielNara/oraculo-libros/internal/config"
	"github.com/GabrielNara/oraculo-libros/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the oracle daemon",
	Long: `Run the daemon: one run fires immediately, then one per interval.
Every run picks a random book, samples a passage and asks the model
for a quote.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForOracle(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a := app.New(cfg)

	slog.Info("starting oráculo daemon",
		"books_dir", cfg.BooksDir,
		"logs_dir", cfg.LogsDir,
		"interval", cfg.Interval,
	)

	sched := scheduler.New(scheduler.Config{
		Interval: cfg.Interval,
		Run:      a.Runner.RunOnce,
		Notifier: a.Notifier,
	})

	// Run scheduler in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- sched.Run(ctx)
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			return fmt.Errorf("scheduler error: %w", err)
		}
	}

	slog.Info("shutting down...")
	cancel()

	return nil
}
