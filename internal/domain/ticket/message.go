package ticket

import (
	"fmt"
	"time"
)

// Message is one stored entry in a ticket's conversation thread. The
// ticket's original message is not stored here; it is synthesized into the
// thread on read (see Conversation).
type Message struct {
	id        uint
	ticketID  uint
	userID    *uint
	body      string
	isStaff   bool
	createdAt time.Time
}

func NewMessage(ticketID uint, userID uint, body string, isStaff bool) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 5000 characters")
	}

	author := userID
	return &Message{
		ticketID:  ticketID,
		userID:    &author,
		body:      body,
		isStaff:   isStaff,
		createdAt: time.Now().UTC(),
	}, nil
}

// NewSystemMessage creates an authorless audit-trail entry, such as the
// note appended when a ticket is transferred.
func NewSystemMessage(ticketID uint, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}

	return &Message{
		ticketID:  ticketID,
		body:      body,
		isStaff:   true,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	userID *uint,
	body string,
	isStaff bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		isStaff:   isStaff,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) UserID() *uint {
	return m.userID
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) IsStaff() bool {
	return m.isStaff
}

func (m *Message) IsSystem() bool {
	return m.userID == nil
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
