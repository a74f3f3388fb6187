package usecases

import (
	"time"

	"crest/internal/domain/ticket"
)

// TicketDTO is the flattened read model for a ticket, with display names
// already resolved so the interface layer never reaches back into the user
// store.
type TicketDTO struct {
	ID        uint       `json:"id"`
	Number    string     `json:"number"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	UserID    uint       `json:"user_id"`
	UserName  string     `json:"user_name,omitempty"`
	OwnerID   *uint      `json:"owner_id,omitempty"`
	OwnerName string     `json:"owner_name,omitempty"`
	IsLocked  bool       `json:"is_locked"`
	LockedAt  *time.Time `json:"locked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ConversationEntryDTO is one element of the composed thread, author name
// resolved. A nil AuthorID marks a system entry.
type ConversationEntryDTO struct {
	ID         string    `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	IsStaff    bool      `json:"is_staff"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTicketDTO(t *ticket.Ticket, names map[uint]string) TicketDTO {
	dto := TicketDTO{
		ID:        t.ID(),
		Number:    t.Number(),
		Subject:   t.Subject(),
		Message:   t.Message(),
		Status:    string(t.Status()),
		Priority:  string(t.Priority()),
		UserID:    t.UserID(),
		UserName:  names[t.UserID()],
		OwnerID:   t.OwnerID(),
		IsLocked:  t.IsLocked(),
		LockedAt:  t.LockedAt(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
	if t.OwnerID() != nil {
		dto.OwnerName = names[*t.OwnerID()]
	}
	return dto
}
