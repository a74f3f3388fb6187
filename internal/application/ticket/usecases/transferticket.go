package usecases

import (
	"context"
	"fmt"

	"crest/internal/application/events"
	appnotif "crest/internal/application/notification"
	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// TransferTicketCommand represents the input for reassigning a ticket.
type TransferTicketCommand struct {
	TicketID      uint
	TargetStaffID uint
	ActorID       uint
	IsAdmin       bool
}

// TransferTicketResult represents the output of a transfer.
type TransferTicketResult struct {
	Ticket TicketDTO
}

// TransferTicketUseCase handles reassigning a ticket to another staff
// member. Ownership assignment is last-write-wins; each transfer appends a
// system message to the conversation so the audit trail records every
// attempt, including repeated transfers to the same owner.
type TransferTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	userRepo    user.Repository
	fanout      *appnotif.FanoutService
	publisher   events.Publisher
	logger      logger.Interface
}

func NewTransferTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	fanout *appnotif.FanoutService,
	publisher events.Publisher,
	log logger.Interface,
) *TransferTicketUseCase {
	return &TransferTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		fanout:      fanout,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *TransferTicketUseCase) Execute(ctx context.Context, cmd TransferTicketCommand) (*TransferTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TargetStaffID == 0 {
		return nil, errors.NewValidationError("target staff ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeAccessedBy(cmd.ActorID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("ticket is locked by its owner")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.TargetStaffID)
	if err != nil {
		return nil, errors.NewNotFoundError("target staff member not found")
	}
	if !target.IsStaff() {
		return nil, errors.NewValidationError("transfer target is not a staff member")
	}

	if err := t.TransferTo(cmd.TargetStaffID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to transfer ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to transfer ticket")
	}

	// The system note is part of the transfer's contract even when the
	// owner did not change.
	note, err := ticket.NewSystemMessage(t.ID(), fmt.Sprintf("Ticket transferred to %s", target.DisplayName()))
	if err == nil {
		err = uc.messageRepo.Save(ctx, note)
	}
	if err != nil {
		uc.logger.Warnw("failed to append transfer note", "ticket_id", t.ID(), "error", err)
	}

	if err := uc.fanout.NotifyUserOfTicketUpdate(ctx, t.UserID(), t.ID(), t.Number(), appnotif.UpdateAssigned, target.DisplayName()); err != nil {
		uc.logger.Warnw("transfer notification failed", "ticket_id", t.ID(), "error", err)
	}

	if err := uc.publisher.PublishTicketChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish ticket change", "ticket_id", t.ID(), "error", err)
	}
	if err := uc.publisher.PublishConversationChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish conversation change", "ticket_id", t.ID(), "error", err)
	}

	names := map[uint]string{target.ID(): target.DisplayName()}
	return &TransferTicketResult{Ticket: toTicketDTO(t, names)}, nil
}
