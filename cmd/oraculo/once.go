package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/GabrielNara/oraculo-libros/internal/app"
	"github.com/GabrielNara/oraculo-libros/internal/config"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single cycle and exit",
	Long: `Run one full cycle right now, without the scheduler. Useful for
trying things out and for cron-style setups.`,
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForOracle(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a := app.New(cfg)

	slog.Info("running single cycle", "books_dir", cfg.BooksDir)
	if err := a.Runner.RunOnce(context.Background()); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
