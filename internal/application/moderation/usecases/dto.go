package usecases

import (
	"time"

	"crest/internal/domain/report"
)

// ReportDTO is the flattened read model for a report, with display names
// resolved where the listing needs them.
type ReportDTO struct {
	ID               uint       `json:"id"`
	ReporterUserID   uint       `json:"reporter_user_id"`
	ReporterName     string     `json:"reporter_name,omitempty"`
	ReportedUserID   *uint      `json:"reported_user_id,omitempty"`
	ReportedUserName string     `json:"reported_user_name,omitempty"`
	ContentID        *uint      `json:"content_id,omitempty"`
	ContentType      string     `json:"content_type,omitempty"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	Urgent           bool       `json:"urgent"`
	HandledBy        *uint      `json:"handled_by,omitempty"`
	HandledAt        *time.Time `json:"handled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toReportDTO(r *report.Report, names map[uint]string) ReportDTO {
	dto := ReportDTO{
		ID:             r.ID(),
		ReporterUserID: r.ReporterUserID(),
		ReporterName:   names[r.ReporterUserID()],
		ReportedUserID: r.ReportedUserID(),
		ContentID:      r.ContentID(),
		ContentType:    r.ContentType(),
		Reason:         r.Reason(),
		Status:         string(r.Status()),
		Urgent:         r.Urgent(),
		HandledBy:      r.HandledBy(),
		HandledAt:      r.HandledAt(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
	if r.ReportedUserID() != nil {
		dto.ReportedUserName = names[*r.ReportedUserID()]
	}
	return dto
}
