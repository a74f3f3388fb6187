package valueobjects

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusResolved  Status = "resolved"
	StatusDismissed Status = "dismissed"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusReviewed:  true,
	StatusResolved:  true,
	StatusDismissed: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsDismissed() bool {
	return s == StatusDismissed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
