package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	BulkCreate(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	Delete(ctx context.Context, id uint) error

	// DeleteByMetadataExcept removes every notification of the given type
	// whose metadata carries the given correlation key/value, sparing the
	// handler's own rows. Used when a report, appeal or ticket reaches a
	// terminal state so other staff no longer see a stale action prompt.
	// The type scoping keeps outcome notifications (warning, account or
	// content action, appeal decision) alive: they share the correlation
	// id with the prompts being purged.
	DeleteByMetadataExcept(ctx context.Context, notificationType Type, metaKey string, correlationID uint, exceptUserID uint) error
}
