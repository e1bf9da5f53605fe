// Package notify provides the in-tree Notifier implementation. Actual
// message delivery belongs to an external collaborator; this implementation
// records the would-be send in the application log so operators can verify
// the recipient resolution end to end.
package notify

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// LogNotifier implements ports.Notifier by logging the notification instead
// of delivering it.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that records sends in the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Send records the notification and returns immediately.
func (n *LogNotifier) Send(ctx context.Context, notification ports.Notification) error {
	n.logger.InfoContext(ctx, "notification recorded",
		"recipients", notification.Recipients,
		"subject", notification.Subject,
		"body", notification.Body,
	)
	return nil
}
