package notification

import (
	"fmt"
	"time"
)

// Type classifies a notification for rendering and cleanup.
type Type string

const (
	TypeNewTicket     Type = "new_ticket"
	TypeNewReport     Type = "new_report"
	TypeNewAppeal     Type = "new_appeal"
	TypeTicketUpdate  Type = "ticket_update"
	TypeWarning       Type = "warning"
	TypeAccountAction Type = "account_action"
	TypeContentAction Type = "content_action"
)

var validTypes = map[Type]bool{
	TypeNewTicket:     true,
	TypeNewReport:     true,
	TypeNewAppeal:     true,
	TypeTicketUpdate:  true,
	TypeWarning:       true,
	TypeAccountAction: true,
	TypeContentAction: true,
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

// Metadata keys carrying correlation IDs. Fan-out always sets the matching
// key so terminal transitions can purge stale staff notifications.
const (
	MetaReportID = "report_id"
	MetaTicketID = "ticket_id"
	MetaAppealID = "appeal_id"
)

// Notification is a per-recipient event record. It is never edited after
// creation; only the read flag toggles, and purge deletes it outright.
type Notification struct {
	id               uint
	userID           uint
	notificationType Type
	title            string
	message          string
	read             bool
	actionURL        string
	metadata         map[string]interface{}
	createdAt        time.Time
}

func NewNotification(
	userID uint,
	notificationType Type,
	title string,
	message string,
	actionURL string,
	metadata map[string]interface{},
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		actionURL:        actionURL,
		metadata:         metadata,
		createdAt:        time.Now().UTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	notificationType Type,
	title string,
	message string,
	read bool,
	actionURL string,
	metadata map[string]interface{},
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		read:             read,
		actionURL:        actionURL,
		metadata:         metadata,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() Type {
	return n.notificationType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Read() bool {
	return n.read
}

func (n *Notification) ActionURL() string {
	return n.actionURL
}

func (n *Notification) Metadata() map[string]interface{} {
	metadataCopy := make(map[string]interface{}, len(n.metadata))
	for k, v := range n.metadata {
		metadataCopy[k] = v
	}
	return metadataCopy
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkAsRead() {
	n.read = true
}
