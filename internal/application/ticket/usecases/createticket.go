package usecases

import (
	"context"

	appnotif "crest/internal/application/notification"
	"crest/internal/domain/ticket"
	vo "crest/internal/domain/ticket/valueobjects"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// CreateTicketCommand represents the input for submitting a support ticket.
type CreateTicketCommand struct {
	UserID   uint
	Subject  string
	Message  string
	Priority string
}

// CreateTicketResult represents the output of submitting a ticket.
type CreateTicketResult struct {
	Ticket TicketDTO
}

// CreateTicketUseCase handles ticket submission: persist, then fan out a
// staff notification. The fan-out is a side effect and never fails the
// submission.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	numberGen  ticket.NumberGenerator
	fanout     *appnotif.FanoutService
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	numberGen ticket.NumberGenerator,
	fanout *appnotif.FanoutService,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numberGen:  numberGen,
		fanout:     fanout,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}

	subject := sanitize.Text(cmd.Subject)
	message := sanitize.Text(cmd.Message)

	t, err := ticket.NewTicket(subject, message, priority, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := t.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to assign ticket number")
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if err := uc.fanout.NotifyStaffOfNewTicket(ctx, t); err != nil {
		uc.logger.Warnw("staff fan-out for new ticket failed",
			"ticket_id", t.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"ticket_number", t.Number(),
		"user_id", cmd.UserID,
	)

	return &CreateTicketResult{Ticket: toTicketDTO(t, nil)}, nil
}
