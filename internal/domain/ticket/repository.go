package ticket

import (
	"context"

	vo "crest/internal/domain/ticket/valueobjects"
)

// Assignment selects which owner bucket a ticket listing covers.
type Assignment string

const (
	AssignmentAll        Assignment = "all"
	AssignmentMe         Assignment = "me"
	AssignmentUnassigned Assignment = "unassigned"
)

func (a Assignment) IsValid() bool {
	switch a {
	case AssignmentAll, AssignmentMe, AssignmentUnassigned, "":
		return true
	}
	return false
}

// Filter narrows a ticket listing. Search is a case-insensitive substring
// match over subject, message and number. ActorID backs AssignmentMe.
type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	Assignment Assignment
	ActorID    uint
	Search     string
	Page       int
	PageSize   int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
