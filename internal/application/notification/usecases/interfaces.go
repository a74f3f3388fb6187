package usecases

import "context"

// ListNotificationsExecutor defines the interface for listing a user's notifications.
type ListNotificationsExecutor interface {
	Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error)
}

// GetUnreadCountExecutor defines the interface for counting unread notifications.
type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, cmd GetUnreadCountCommand) (*GetUnreadCountResult, error)
}

// MarkAsReadExecutor defines the interface for marking one notification read.
type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) error
}

// MarkAllAsReadExecutor defines the interface for marking all of a user's notifications read.
type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllAsReadCommand) error
}
