package ports

import "context"

// Notification is a message addressed to a set of commercial staff members
// about a grouped batch ready for sale.
type Notification struct {
	Recipients []string
	Subject    string
	Body       string
}

// Notifier dispatches notifications to staff. Actual delivery is an external
// collaborator; the in-tree implementation only records the would-be send.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
