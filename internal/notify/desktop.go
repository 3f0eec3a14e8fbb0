package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier raises system desktop notifications.
type DesktopNotifier struct{}

// NewDesktopNotifier creates a desktop notifier.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Send raises one desktop notification.
func (d *DesktopNotifier) Send(_ context.Context, notification Notification) error {
	return beeep.Notify(notification.Subject, notification.Body, "")
}
