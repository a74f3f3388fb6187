package usecases

import "context"

// CreateTicketExecutor defines the interface for submitting a ticket.
type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

// ListTicketsExecutor defines the interface for the staff ticket listing.
type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

// GetTicketExecutor defines the interface for fetching one ticket.
type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error)
}

// UpdateTicketExecutor defines the interface for partial ticket updates.
type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

// DeleteTicketExecutor defines the interface for deleting a ticket.
type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

// TransferTicketExecutor defines the interface for reassigning a ticket.
type TransferTicketExecutor interface {
	Execute(ctx context.Context, cmd TransferTicketCommand) (*TransferTicketResult, error)
}

// AppendMessageExecutor defines the interface for replying on a ticket.
type AppendMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendMessageCommand) (*AppendMessageResult, error)
}

// LoadConversationExecutor defines the interface for reading a thread.
type LoadConversationExecutor interface {
	Execute(ctx context.Context, cmd LoadConversationCommand) (*LoadConversationResult, error)
}

// LockTicketExecutor defines the interface for locking a ticket.
type LockTicketExecutor interface {
	Execute(ctx context.Context, cmd LockTicketCommand) (*LockTicketResult, error)
}

// UnlockTicketExecutor defines the interface for unlocking a ticket.
type UnlockTicketExecutor interface {
	Execute(ctx context.Context, cmd LockTicketCommand) (*LockTicketResult, error)
}
