package ticket

import (
	"fmt"
	"time"
)

// ConversationEntry is one element of the composed read model for a
// ticket's thread. The entry ID is a string because the synthesized initial
// entry has the deterministic ID "initial-<ticket_id>" while stored rows
// carry their numeric ID.
type ConversationEntry struct {
	ID        string
	TicketID  uint
	UserID    *uint
	Body      string
	IsStaff   bool
	CreatedAt time.Time
}

// InitialEntryID returns the deterministic ID of the synthesized first
// entry for a ticket.
func InitialEntryID(ticketID uint) string {
	return fmt.Sprintf("initial-%d", ticketID)
}

// ComposeConversation builds the authoritative thread for a ticket: the
// synthesized initial entry (the ticket's own message, authored by its
// submitter at creation time) followed by the stored messages. Stored
// messages must already be ordered by created_at ascending; since the
// ticket's creation always precedes its replies, the result is
// chronological. Equal timestamps are not re-ordered.
func ComposeConversation(t *Ticket, messages []*Message) []ConversationEntry {
	submitter := t.UserID()
	entries := make([]ConversationEntry, 0, len(messages)+1)
	entries = append(entries, ConversationEntry{
		ID:        InitialEntryID(t.ID()),
		TicketID:  t.ID(),
		UserID:    &submitter,
		Body:      t.Message(),
		IsStaff:   false,
		CreatedAt: t.CreatedAt(),
	})

	for _, m := range messages {
		entries = append(entries, ConversationEntry{
			ID:        fmt.Sprintf("%d", m.ID()),
			TicketID:  m.TicketID(),
			UserID:    m.UserID(),
			Body:      m.Body(),
			IsStaff:   m.IsStaff(),
			CreatedAt: m.CreatedAt(),
		})
	}

	return entries
}
