package usecases

import (
	"context"

	"crest/internal/application/events"
	appnotif "crest/internal/application/notification"
	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// AppendMessageCommand represents the input for replying on a ticket.
type AppendMessageCommand struct {
	TicketID uint
	AuthorID uint
	IsAdmin  bool
	IsStaff  bool
	Body     string
}

// AppendMessageResult carries the full re-fetched thread, not just the new
// row, so the caller renders the authoritative state.
type AppendMessageResult struct {
	Entries []ConversationEntryDTO
}

// AppendMessageUseCase handles appending a reply to a ticket's thread. The
// advisory access check runs before any write. A staff reply triggers a
// notification to the submitter and a best-effort email; neither failure
// is surfaced. Replying does not assign ownership.
type AppendMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	userRepo    user.Repository
	fanout      *appnotif.FanoutService
	publisher   events.Publisher
	logger      logger.Interface
}

func NewAppendMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	fanout *appnotif.FanoutService,
	publisher events.Publisher,
	log logger.Interface,
) *AppendMessageUseCase {
	return &AppendMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		fanout:      fanout,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *AppendMessageUseCase) Execute(ctx context.Context, cmd AppendMessageCommand) (*AppendMessageResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Staff actors are bound by the advisory lock; the submitter may always
	// reply to their own ticket.
	if cmd.IsStaff && !t.CanBeAccessedBy(cmd.AuthorID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError("ticket is locked by its owner")
	}
	if !cmd.IsStaff && cmd.AuthorID != t.UserID() {
		return nil, errors.NewForbiddenError("only the submitter may reply to this ticket")
	}

	body := sanitize.Text(cmd.Body)
	m, err := ticket.NewMessage(cmd.TicketID, cmd.AuthorID, body, cmd.IsStaff)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, m); err != nil {
		uc.logger.Errorw("failed to save message", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to append message")
	}

	if cmd.IsStaff {
		uc.notifySubmitter(ctx, t, cmd.AuthorID, body)
	}

	if err := uc.publisher.PublishConversationChanged(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to publish conversation change", "ticket_id", t.ID(), "error", err)
	}

	// Re-fetch the full thread instead of splicing the new row locally.
	entries, err := loadThread(ctx, uc.ticketRepo, uc.messageRepo, uc.userRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	return &AppendMessageResult{Entries: entries}, nil
}

func (uc *AppendMessageUseCase) notifySubmitter(ctx context.Context, t *ticket.Ticket, staffID uint, body string) {
	staffName := ""
	submitterEmail := ""

	users, err := uc.userRepo.GetByIDs(ctx, []uint{staffID, t.UserID()})
	if err != nil {
		uc.logger.Warnw("failed to resolve users for reply notification", "ticket_id", t.ID(), "error", err)
	} else {
		if staff, ok := users[staffID]; ok {
			staffName = staff.DisplayName()
		}
		if submitter, ok := users[t.UserID()]; ok {
			submitterEmail = submitter.Email()
		}
	}

	if err := uc.fanout.NotifyUserOfTicketUpdate(ctx, t.UserID(), t.ID(), t.Number(), appnotif.UpdateReply, staffName); err != nil {
		uc.logger.Warnw("reply notification failed", "ticket_id", t.ID(), "error", err)
	}

	uc.fanout.SendTicketEmail(ctx, submitterEmail, t.Number(), t.ID(), body, staffName)
}
