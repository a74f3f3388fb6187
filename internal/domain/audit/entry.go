package audit

import (
	"fmt"
	"time"
)

// Entry is an immutable audit-log record of a moderation action. The
// payload carries the full action value for forensic replay.
type Entry struct {
	id        uint
	actorID   uint
	action    string
	reason    string
	payload   map[string]interface{}
	createdAt time.Time
}

func NewEntry(actorID uint, action, reason string, payload map[string]interface{}) (*Entry, error) {
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &Entry{
		actorID:   actorID,
		action:    action,
		reason:    reason,
		payload:   payload,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	actorID uint,
	action string,
	reason string,
	payload map[string]interface{},
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &Entry{
		id:        id,
		actorID:   actorID,
		action:    action,
		reason:    reason,
		payload:   payload,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) ActorID() uint {
	return e.actorID
}

func (e *Entry) Action() string {
	return e.action
}

func (e *Entry) Reason() string {
	return e.reason
}

func (e *Entry) Payload() map[string]interface{} {
	payloadCopy := make(map[string]interface{}, len(e.payload))
	for k, v := range e.payload {
		payloadCopy[k] = v
	}
	return payloadCopy
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit entry ID cannot be zero")
	}
	e.id = id
	return nil
}
