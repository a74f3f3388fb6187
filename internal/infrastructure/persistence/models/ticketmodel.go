package models

import (
	"time"

	"crest/internal/shared/constants"
)

// TicketModel represents the database persistence model for tickets.
// This is the anti-corruption layer between domain and database.
type TicketModel struct {
	ID       uint   `gorm:"primarykey"`
	Number   string `gorm:"uniqueIndex;not null;size:32"`
	Subject  string `gorm:"not null;size:200"`
	Message  string `gorm:"not null;type:text"`
	Status   string `gorm:"not null;default:pending;size:20;index:idx_ticket_status"`
	Priority string `gorm:"not null;default:medium;size:20;index:idx_ticket_priority"`
	OwnerID  *uint  `gorm:"index:idx_ticket_owner"`
	IsLocked bool   `gorm:"not null;default:false"`
	LockedAt *time.Time
	UserID   uint `gorm:"not null;index:idx_ticket_user"`

	CreatedAt time.Time `gorm:"index:idx_ticket_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// ConversationMessageModel represents one stored reply on a ticket. The
// ticket's own opening message is not stored here.
type ConversationMessageModel struct {
	ID       uint  `gorm:"primarykey"`
	TicketID uint  `gorm:"not null;index:idx_message_ticket"`
	UserID   *uint // nil marks a system-authored entry
	Body     string `gorm:"not null;type:text"`
	IsStaff  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"index:idx_message_created"`
}

// TableName specifies the table name for GORM.
func (ConversationMessageModel) TableName() string {
	return constants.TableConversationMessages
}
