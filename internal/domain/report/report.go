package report

import (
	"errors"
	"fmt"
	"time"

	vo "crest/internal/domain/report/valueobjects"
)

// ErrHandledByAnother is returned when a non-admin staff member touches a
// report that another handler has in progress.
var ErrHandledByAnother = errors.New("report is being handled by another staff member")

// Report is a user-filed complaint about an account or a piece of content.
// Once a staff member claims it the report is in_progress and exclusive to
// that handler; other non-admin staff are rejected until it reaches a
// terminal state.
type Report struct {
	id             uint
	reporterUserID uint
	reportedUserID *uint
	contentID      *uint
	contentType    string
	reason         string
	status         vo.Status
	handledBy      *uint
	handledAt      *time.Time
	urgent         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAccountReport files a complaint against a user account.
func NewAccountReport(reporterUserID, reportedUserID uint, reason string, urgent bool) (*Report, error) {
	if reporterUserID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if reportedUserID == 0 {
		return nil, fmt.Errorf("reported user ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("reason is required")
	}

	now := time.Now().UTC()
	reported := reportedUserID
	return &Report{
		reporterUserID: reporterUserID,
		reportedUserID: &reported,
		reason:         reason,
		status:         vo.StatusPending,
		urgent:         urgent,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewContentReport files a complaint against a piece of content. The
// content type must belong to the closed set of moderatable tables.
func NewContentReport(reporterUserID, contentID uint, contentType, reason string, urgent bool) (*Report, error) {
	if reporterUserID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if contentID == 0 {
		return nil, fmt.Errorf("content ID is required")
	}
	if _, err := ContentTableFor(contentType); err != nil {
		return nil, err
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("reason is required")
	}

	now := time.Now().UTC()
	content := contentID
	return &Report{
		reporterUserID: reporterUserID,
		contentID:      &content,
		contentType:    contentType,
		reason:         reason,
		status:         vo.StatusPending,
		urgent:         urgent,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructReport(
	id uint,
	reporterUserID uint,
	reportedUserID *uint,
	contentID *uint,
	contentType string,
	reason string,
	status vo.Status,
	handledBy *uint,
	handledAt *time.Time,
	urgent bool,
	createdAt, updatedAt time.Time,
) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if reporterUserID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid report status")
	}

	return &Report{
		id:             id,
		reporterUserID: reporterUserID,
		reportedUserID: reportedUserID,
		contentID:      contentID,
		contentType:    contentType,
		reason:         reason,
		status:         status,
		handledBy:      handledBy,
		handledAt:      handledAt,
		urgent:         urgent,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Report) ID() uint {
	return r.id
}

func (r *Report) ReporterUserID() uint {
	return r.reporterUserID
}

func (r *Report) ReportedUserID() *uint {
	return r.reportedUserID
}

func (r *Report) ContentID() *uint {
	return r.contentID
}

func (r *Report) ContentType() string {
	return r.contentType
}

func (r *Report) Reason() string {
	return r.reason
}

func (r *Report) Status() vo.Status {
	return r.status
}

func (r *Report) HandledBy() *uint {
	return r.handledBy
}

func (r *Report) HandledAt() *time.Time {
	return r.handledAt
}

func (r *Report) Urgent() bool {
	return r.urgent
}

func (r *Report) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Report) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsAccountReport reports whether the complaint targets a user account.
func (r *Report) IsAccountReport() bool {
	return r.reportedUserID != nil
}

// CanBeHandledBy enforces handler exclusivity: while in_progress, only the
// claiming staff member or an admin may act on the report.
func (r *Report) CanBeHandledBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if !r.status.IsInProgress() {
		return true
	}
	return r.handledBy != nil && *r.handledBy == userID
}

// Claim moves a pending report to in_progress and records the exclusive
// handler. Claiming an already-claimed report is a no-op for the same
// handler and an error for anyone else.
func (r *Report) Claim(handlerID uint) error {
	if handlerID == 0 {
		return fmt.Errorf("handler ID is required")
	}
	if r.status.IsInProgress() {
		if r.handledBy != nil && *r.handledBy == handlerID {
			return nil
		}
		return ErrHandledByAnother
	}
	if !r.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot claim a %s report", r.status)
	}

	now := time.Now().UTC()
	handler := handlerID
	r.status = vo.StatusInProgress
	r.handledBy = &handler
	r.updatedAt = now
	return nil
}

// Resolve transitions the report to its resolved terminal state and stamps
// the handler. Called only after the resolution side effects succeeded.
func (r *Report) Resolve(handlerID uint) error {
	return r.finish(vo.StatusResolved, handlerID)
}

// Dismiss transitions the report to its dismissed terminal state.
func (r *Report) Dismiss(handlerID uint) error {
	return r.finish(vo.StatusDismissed, handlerID)
}

func (r *Report) finish(terminal vo.Status, handlerID uint) error {
	if handlerID == 0 {
		return fmt.Errorf("handler ID is required")
	}
	if !r.status.CanTransitionTo(terminal) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, terminal)
	}

	now := time.Now().UTC()
	handler := handlerID
	r.status = terminal
	r.handledBy = &handler
	r.handledAt = &now
	r.updatedAt = now
	return nil
}
