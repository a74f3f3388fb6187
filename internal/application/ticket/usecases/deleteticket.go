package usecases

import (
	"context"

	"crest/internal/application/events"
	"crest/internal/domain/ticket"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// DeleteTicketCommand represents the input for hard-deleting a ticket.
type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
	IsAdmin  bool
}

// DeleteTicketUseCase handles hard deletion of a ticket and its
// conversation rows. The thread is removed first so a failure midway never
// leaves orphaned messages pointing at a live ticket.
type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	publisher   events.Publisher
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	publisher events.Publisher,
	log logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeAccessedBy(cmd.ActorID, cmd.IsAdmin) {
		return errors.NewForbiddenError("ticket is locked by its owner")
	}

	if err := uc.messageRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket messages", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}
	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if err := uc.publisher.PublishTicketChanged(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to publish ticket change", "ticket_id", cmd.TicketID, "error", err)
	}
	return nil
}
