package ticket

import (
	"fmt"
	"time"

	vo "crest/internal/domain/ticket/valueobjects"
)

// Ticket is a support request. Ownership and the lock flag form a
// cooperative, advisory single-writer hint: they gate actions through
// CanBeAccessedBy but no storage-level mutual exclusion backs them, so
// concurrent transfers are last-write-wins.
type Ticket struct {
	id        uint
	number    string
	subject   string
	message   string
	status    vo.Status
	priority  vo.Priority
	ownerID   *uint
	isLocked  bool
	lockedAt  *time.Time
	userID    uint
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(subject, message string, priority vo.Priority, userID uint) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if userID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		subject:   subject,
		message:   message,
		status:    vo.StatusPending,
		priority:  priority,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	subject string,
	message string,
	status vo.Status,
	priority vo.Priority,
	ownerID *uint,
	isLocked bool,
	lockedAt *time.Time,
	userID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if userID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	return &Ticket{
		id:        id,
		number:    number,
		subject:   subject,
		message:   message,
		status:    status,
		priority:  priority,
		ownerID:   ownerID,
		isLocked:  isLocked,
		lockedAt:  lockedAt,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) OwnerID() *uint {
	return t.ownerID
}

func (t *Ticket) IsLocked() bool {
	return t.isLocked
}

func (t *Ticket) LockedAt() *time.Time {
	return t.lockedAt
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// CanBeAccessedBy answers whether the actor may write to this ticket right
// now: admins always, the current owner always, anyone on staff when the
// ticket is unlocked. Advisory only.
func (t *Ticket) CanBeAccessedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if t.ownerID != nil && *t.ownerID == userID {
		return true
	}
	return !t.isLocked
}

func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()
	return nil
}

// TransferTo reassigns ownership. Transferring to the current owner is a
// no-op on the owner field; the caller still appends its audit message.
func (t *Ticket) TransferTo(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("target staff ID cannot be zero")
	}

	t.ownerID = &staffID
	t.updatedAt = time.Now().UTC()
	return nil
}

// Lock marks the ticket as locked to its owner. A ticket without an owner
// cannot be locked since the lock would exclude everyone but admins.
func (t *Ticket) Lock() error {
	if t.ownerID == nil {
		return fmt.Errorf("cannot lock a ticket without an owner")
	}
	if t.isLocked {
		return nil
	}

	now := time.Now().UTC()
	t.isLocked = true
	t.lockedAt = &now
	t.updatedAt = now
	return nil
}

func (t *Ticket) Unlock() {
	if !t.isLocked {
		return
	}
	t.isLocked = false
	t.lockedAt = nil
	t.updatedAt = time.Now().UTC()
}
