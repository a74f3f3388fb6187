package usecases

import (
	"context"

	"crest/internal/application/events"
	appnotif "crest/internal/application/notification"
	"crest/internal/domain/ticket"
	vo "crest/internal/domain/ticket/valueobjects"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// UpdateTicketCommand represents a partial status/priority update. Nil
// fields are left untouched.
type UpdateTicketCommand struct {
	TicketID uint
	ActorID  uint
	IsAdmin  bool
	Status   *string
	Priority *string
}

// UpdateTicketResult represents the output of a ticket update.
type UpdateTicketResult struct {
	Ticket TicketDTO
}

// UpdateTicketUseCase handles partial ticket updates. The advisory access
// rule is checked before any write; resolving a ticket notifies the
// submitter as a side effect.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	fanout     *appnotif.FanoutService
	publisher  events.Publisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	fanout *appnotif.FanoutService,
	publisher events.Publisher,
	log logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		fanout:     fanout,
		publisher:  publisher,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Status == nil && cmd.Priority == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeAccessedBy(cmd.ActorID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("ticket is locked by its owner")
	}

	statusChanged := false
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statusChanged = status != t.Status()
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if statusChanged {
		updateType := appnotif.UpdateStatusChange
		if t.Status() == vo.StatusResolved {
			updateType = appnotif.UpdateResolved
		}
		if err := uc.fanout.NotifyUserOfTicketUpdate(ctx, t.UserID(), t.ID(), t.Number(), updateType, ""); err != nil {
			uc.logger.Warnw("ticket update notification failed", "ticket_id", t.ID(), "error", err)
		}
	}

	if err := uc.publisher.PublishTicketChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish ticket change", "ticket_id", t.ID(), "error", err)
	}

	return &UpdateTicketResult{Ticket: toTicketDTO(t, nil)}, nil
}
