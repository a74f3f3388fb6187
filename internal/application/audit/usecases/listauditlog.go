package usecases

import (
	"context"
	"time"

	"crest/internal/domain/audit"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ListAuditLogCommand represents the input for browsing the audit log.
type ListAuditLogCommand struct {
	ActorID  *uint
	Page     int
	PageSize int
}

// AuditEntryDTO is the flattened read model for one audit record.
type AuditEntryDTO struct {
	ID        uint                   `json:"id"`
	ActorID   uint                   `json:"actor_id"`
	Action    string                 `json:"action"`
	Reason    string                 `json:"reason,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ListAuditLogResult represents the output of an audit-log listing.
type ListAuditLogResult struct {
	Entries  []AuditEntryDTO
	Total    int64
	Page     int
	PageSize int
}

// ListAuditLogExecutor defines the interface for browsing the audit log.
type ListAuditLogExecutor interface {
	Execute(ctx context.Context, cmd ListAuditLogCommand) (*ListAuditLogResult, error)
}

// ListAuditLogUseCase handles the admin-facing audit-log listing, newest
// first, optionally filtered by actor.
type ListAuditLogUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditLogUseCase(auditRepo audit.Repository, log logger.Interface) *ListAuditLogUseCase {
	return &ListAuditLogUseCase{auditRepo: auditRepo, logger: log}
}

func (uc *ListAuditLogUseCase) Execute(ctx context.Context, cmd ListAuditLogCommand) (*ListAuditLogResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 50
	}

	entries, total, err := uc.auditRepo.List(ctx, cmd.ActorID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, errors.NewInternalError("failed to list audit entries")
	}

	dtos := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, AuditEntryDTO{
			ID:        e.ID(),
			ActorID:   e.ActorID(),
			Action:    e.Action(),
			Reason:    e.Reason(),
			Payload:   e.Payload(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return &ListAuditLogResult{
		Entries:  dtos,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
