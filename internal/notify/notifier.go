package notify

import "context"

// Notification is one message for the user.
type Notification struct {
	Subject string
	Body    string
}

// Notifier delivers notifications. Delivery is fire-and-forget; no
// guarantee is required and callers log failures instead of aborting.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
