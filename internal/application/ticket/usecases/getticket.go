package usecases

import (
	"context"

	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// GetTicketCommand represents the input for fetching one ticket.
type GetTicketCommand struct {
	TicketID uint
}

// GetTicketResult represents the output of fetching one ticket.
type GetTicketResult struct {
	Ticket TicketDTO
}

// GetTicketUseCase handles fetching a single ticket with names resolved.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	ids := []uint{t.UserID()}
	if t.OwnerID() != nil {
		ids = append(ids, *t.OwnerID())
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve display names for ticket", "ticket_id", t.ID(), "error", err)
		users = map[uint]*user.User{}
	}

	names := make(map[uint]string, len(users))
	for id, u := range users {
		names[id] = u.DisplayName()
	}

	return &GetTicketResult{Ticket: toTicketDTO(t, names)}, nil
}
