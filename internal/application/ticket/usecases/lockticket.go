package usecases

import (
	"context"

	"crest/internal/application/events"
	"crest/internal/domain/ticket"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// LockTicketCommand represents the input for locking or unlocking a ticket.
type LockTicketCommand struct {
	TicketID uint
	ActorID  uint
	IsAdmin  bool
}

// LockTicketResult represents the output of a lock or unlock.
type LockTicketResult struct {
	Ticket TicketDTO
}

// LockTicketUseCase handles locking a ticket to its owner. Only the
// current owner or an admin may lock; the lock is advisory and gates
// nothing at the storage level.
type LockTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.Publisher
	logger     logger.Interface
}

func NewLockTicketUseCase(ticketRepo ticket.Repository, publisher events.Publisher, log logger.Interface) *LockTicketUseCase {
	return &LockTicketUseCase{ticketRepo: ticketRepo, publisher: publisher, logger: log}
}

func (uc *LockTicketUseCase) Execute(ctx context.Context, cmd LockTicketCommand) (*LockTicketResult, error) {
	t, err := fetchForLockChange(ctx, uc.ticketRepo, cmd)
	if err != nil {
		return nil, err
	}

	if err := t.Lock(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to lock ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to lock ticket")
	}

	if err := uc.publisher.PublishTicketChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish ticket change", "ticket_id", t.ID(), "error", err)
	}
	return &LockTicketResult{Ticket: toTicketDTO(t, nil)}, nil
}

// UnlockTicketUseCase handles releasing the advisory lock.
type UnlockTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.Publisher
	logger     logger.Interface
}

func NewUnlockTicketUseCase(ticketRepo ticket.Repository, publisher events.Publisher, log logger.Interface) *UnlockTicketUseCase {
	return &UnlockTicketUseCase{ticketRepo: ticketRepo, publisher: publisher, logger: log}
}

func (uc *UnlockTicketUseCase) Execute(ctx context.Context, cmd LockTicketCommand) (*LockTicketResult, error) {
	t, err := fetchForLockChange(ctx, uc.ticketRepo, cmd)
	if err != nil {
		return nil, err
	}

	t.Unlock()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to unlock ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to unlock ticket")
	}

	if err := uc.publisher.PublishTicketChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish ticket change", "ticket_id", t.ID(), "error", err)
	}
	return &LockTicketResult{Ticket: toTicketDTO(t, nil)}, nil
}

func fetchForLockChange(ctx context.Context, repo ticket.Repository, cmd LockTicketCommand) (*ticket.Ticket, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := repo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	isOwner := t.OwnerID() != nil && *t.OwnerID() == cmd.ActorID
	if !cmd.IsAdmin && !isOwner {
		return nil, errors.NewForbiddenError("only the owner or an admin may change the lock")
	}
	return t, nil
}
