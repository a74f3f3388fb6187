// Package events defines the change-feed port the application layer
// publishes through. The Redis implementation lives in
// infrastructure/pubsub; tests use func-field fakes.
package events

import "context"

// Publisher emits per-row change events. Delivery is at-least-once and
// carries no cross-row ordering guarantee; consumers re-read the row.
// Publishing is best-effort from the caller's point of view: usecases log
// failures and continue.
type Publisher interface {
	PublishTicketChanged(ctx context.Context, ticketID uint) error
	PublishConversationChanged(ctx context.Context, ticketID uint) error
	PublishReportChanged(ctx context.Context, reportID uint) error
}
