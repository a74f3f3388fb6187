package appeal

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Appeal is a suspended or sanctioned user's request to revisit a
// moderation decision. An accepted appeal lifts the suspension.
type Appeal struct {
	id         uint
	userID     uint
	message    string
	status     Status
	reviewedBy *uint
	reviewedAt *time.Time
	reviewNote string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppeal(userID uint, message string) (*Appeal, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("appeal message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("appeal message exceeds maximum length of 5000 characters")
	}

	now := time.Now().UTC()
	return &Appeal{
		userID:    userID,
		message:   message,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppeal(
	id uint,
	userID uint,
	message string,
	status Status,
	reviewedBy *uint,
	reviewedAt *time.Time,
	reviewNote string,
	createdAt, updatedAt time.Time,
) (*Appeal, error) {
	if id == 0 {
		return nil, fmt.Errorf("appeal ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid appeal status")
	}

	return &Appeal{
		id:         id,
		userID:     userID,
		message:    message,
		status:     status,
		reviewedBy: reviewedBy,
		reviewedAt: reviewedAt,
		reviewNote: reviewNote,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Appeal) ID() uint {
	return a.id
}

func (a *Appeal) UserID() uint {
	return a.userID
}

func (a *Appeal) Message() string {
	return a.message
}

func (a *Appeal) Status() Status {
	return a.status
}

func (a *Appeal) ReviewedBy() *uint {
	return a.reviewedBy
}

func (a *Appeal) ReviewedAt() *time.Time {
	return a.reviewedAt
}

func (a *Appeal) ReviewNote() string {
	return a.reviewNote
}

func (a *Appeal) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Appeal) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Appeal) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("appeal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("appeal ID cannot be zero")
	}
	a.id = id
	return nil
}

// Accept closes the appeal in the user's favor.
func (a *Appeal) Accept(reviewerID uint, note string) error {
	return a.review(StatusAccepted, reviewerID, note)
}

// Reject closes the appeal against the user.
func (a *Appeal) Reject(reviewerID uint, note string) error {
	return a.review(StatusRejected, reviewerID, note)
}

func (a *Appeal) review(terminal Status, reviewerID uint, note string) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if a.status.IsTerminal() {
		return fmt.Errorf("appeal is already %s", a.status)
	}

	now := time.Now().UTC()
	reviewer := reviewerID
	a.status = terminal
	a.reviewedBy = &reviewer
	a.reviewedAt = &now
	a.reviewNote = note
	a.updatedAt = now
	return nil
}
