// Package scheduler fires runs on a fixed interval. It owns the ticker
// explicitly, guards against overlapping runs, and keeps the loop alive
// no matter how a run ends.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/GabrielNara/oraculo-libros/internal/notify"
)

// RunFunc is one complete run. An error is an unexpected failure; soft
// outcomes are handled inside the run itself.
type RunFunc func(ctx context.Context) error

// Scheduler runs one cycle immediately and then on every tick.
type Scheduler struct {
	interval time.Duration
	run      RunFunc
	notifier notify.Notifier
	health   *Health

	// running guards against a run outliving the interval; an
	// overlapping tick is skipped, not queued.
	running sync.Mutex
}

// Config holds scheduler configuration.
type Config struct {
	Interval time.Duration
	Run      RunFunc
	Notifier notify.Notifier
}

// New creates a scheduler.
func New(cfg Config) *Scheduler {
	return &Scheduler{
		interval: cfg.Interval,
		run:      cfg.Run,
		notifier: cfg.Notifier,
		health:   NewHealth(),
	}
}

// Run starts the loop: one run right away, then one per interval,
// until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.Info("starting scheduler", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunGuarded(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.RunGuarded(ctx)
		}
	}
}

// RunGuarded executes one run unless another is still in flight. Every
// failure is contained here: logged, reported as an error notification,
// recorded in health, and never propagated to the loop.
func (s *Scheduler) RunGuarded(ctx context.Context) {
	if !s.running.TryLock() {
		slog.Warn("previous run still in flight, skipping tick")
		return
	}
	defer s.running.Unlock()

	slog.Debug("run starting")
	if err := s.run(ctx); err != nil {
		s.health.RecordFailure(err)
		slog.Error("run failed", "error", err)
		if nerr := s.notifier.Send(ctx, notify.Notification{
			Subject: "Oráculo de libros",
			Body:    fmt.Sprintf("Algo salió mal: %v", err),
		}); nerr != nil {
			slog.Warn("error notification failed", "error", nerr)
		}
		return
	}
	s.health.RecordSuccess()
	slog.Debug("run complete")
}

// Health returns the run outcome tracker.
func (s *Scheduler) Health() *Health {
	return s.health
}
