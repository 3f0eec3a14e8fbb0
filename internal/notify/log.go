package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes notifications to the structured log. Used as a
// fallback on headless machines and in tests.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Send logs the notification.
func (l *LogNotifier) Send(_ context.Context, notification Notification) error {
	slog.Info("notification",
		"subject", notification.Subject,
		"body", notification.Body,
	)
	return nil
}
