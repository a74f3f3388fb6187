package usecases

import (
	"context"

	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// LoadConversationCommand represents the input for reading a ticket's thread.
type LoadConversationCommand struct {
	TicketID uint
	ActorID  uint
	IsStaff  bool
}

// LoadConversationResult represents the composed thread.
type LoadConversationResult struct {
	Entries []ConversationEntryDTO
}

// LoadConversationUseCase handles reading a ticket's full thread: stored
// messages ascending by creation time, the synthesized initial entry
// prepended, author names batch-resolved.
type LoadConversationUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewLoadConversationUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	log logger.Interface,
) *LoadConversationUseCase {
	return &LoadConversationUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (uc *LoadConversationUseCase) Execute(ctx context.Context, cmd LoadConversationCommand) (*LoadConversationResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Reading is open to staff and to the submitter; the advisory lock only
	// gates writes.
	if !cmd.IsStaff && cmd.ActorID != t.UserID() {
		return nil, errors.NewForbiddenError("not allowed to view this ticket")
	}

	entries, err := loadThread(ctx, uc.ticketRepo, uc.messageRepo, uc.userRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	return &LoadConversationResult{Entries: entries}, nil
}

// loadThread composes the authoritative thread for a ticket and resolves
// author display names in one batched lookup. Shared by the read and
// append paths so both always return the same shape.
func loadThread(
	ctx context.Context,
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	log logger.Interface,
	ticketID uint,
) ([]ConversationEntryDTO, error) {
	t, err := ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	messages, err := messageRepo.GetByTicketID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to load ticket messages", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	entries := ticket.ComposeConversation(t, messages)

	idSet := make(map[uint]struct{})
	for _, e := range entries {
		if e.UserID != nil {
			idSet[*e.UserID] = struct{}{}
		}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := map[uint]string{}
	if len(ids) > 0 {
		users, err := userRepo.GetByIDs(ctx, ids)
		if err != nil {
			log.Warnw("failed to resolve author names", "ticket_id", ticketID, "error", err)
		} else {
			for id, u := range users {
				names[id] = u.DisplayName()
			}
		}
	}

	dtos := make([]ConversationEntryDTO, 0, len(entries))
	for _, e := range entries {
		dto := ConversationEntryDTO{
			ID:        e.ID,
			TicketID:  e.TicketID,
			AuthorID:  e.UserID,
			Body:      e.Body,
			IsStaff:   e.IsStaff,
			CreatedAt: e.CreatedAt,
		}
		if e.UserID != nil {
			dto.AuthorName = names[*e.UserID]
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
