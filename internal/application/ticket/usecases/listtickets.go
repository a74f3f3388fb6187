package usecases

import (
	"context"

	"crest/internal/domain/ticket"
	vo "crest/internal/domain/ticket/valueobjects"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ListTicketsCommand represents the input for the staff ticket listing.
type ListTicketsCommand struct {
	ActorID    uint
	Status     string
	Priority   string
	Assignment string
	Search     string
	Page       int
	PageSize   int
}

// ListTicketsResult represents the output of a ticket listing.
type ListTicketsResult struct {
	Tickets  []TicketDTO
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase handles the filtered staff listing, newest first, with
// display names batch-resolved over the distinct set of referenced users.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(cmd)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	names, err := uc.resolveNames(ctx, tickets)
	if err != nil {
		// Names are decoration; the listing is still served without them.
		uc.logger.Warnw("failed to resolve display names for ticket listing", "error", err)
		names = map[uint]string{}
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t, names))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(cmd ListTicketsCommand) (ticket.Filter, error) {
	filter := ticket.Filter{
		ActorID:  cmd.ActorID,
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewStatus(cmd.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if cmd.Priority != "" {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	assignment := ticket.Assignment(cmd.Assignment)
	if !assignment.IsValid() {
		return ticket.Filter{}, errors.NewValidationError("invalid assignment filter")
	}
	filter.Assignment = assignment

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	return filter, nil
}

// resolveNames does one batched lookup over the distinct submitter and
// owner IDs of the page.
func (uc *ListTicketsUseCase) resolveNames(ctx context.Context, tickets []*ticket.Ticket) (map[uint]string, error) {
	idSet := make(map[uint]struct{}, len(tickets)*2)
	for _, t := range tickets {
		idSet[t.UserID()] = struct{}{}
		if t.OwnerID() != nil {
			idSet[*t.OwnerID()] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[uint]string{}, nil
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(users))
	for id, u := range users {
		names[id] = u.DisplayName()
	}
	return names, nil
}
