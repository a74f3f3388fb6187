package usecases

import (
	"context"

	"crest/internal/application/events"
	appnotif "crest/internal/application/notification"
	"crest/internal/domain/audit"
	"crest/internal/domain/report"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// DismissReportCommand represents the input for closing a report with no
// action taken.
type DismissReportCommand struct {
	ReportID  uint
	HandlerID uint
	IsAdmin   bool
	Reason    string
}

// DismissReportResult represents the output of a dismissal.
type DismissReportResult struct {
	Report ReportDTO
}

// DismissReportUseCase handles closing a report without a remedy: audit
// entry, terminal transition, purge of other staff's notifications.
type DismissReportUseCase struct {
	reportRepo report.Repository
	auditRepo  audit.Repository
	fanout     *appnotif.FanoutService
	publisher  events.Publisher
	logger     logger.Interface
}

func NewDismissReportUseCase(
	reportRepo report.Repository,
	auditRepo audit.Repository,
	fanout *appnotif.FanoutService,
	publisher events.Publisher,
	log logger.Interface,
) *DismissReportUseCase {
	return &DismissReportUseCase{
		reportRepo: reportRepo,
		auditRepo:  auditRepo,
		fanout:     fanout,
		publisher:  publisher,
		logger:     log,
	}
}

func (uc *DismissReportUseCase) Execute(ctx context.Context, cmd DismissReportCommand) (*DismissReportResult, error) {
	if cmd.ReportID == 0 {
		return nil, errors.NewValidationError("report ID is required")
	}
	if cmd.HandlerID == 0 {
		return nil, errors.NewValidationError("handler ID is required")
	}

	r, err := uc.reportRepo.GetByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, errors.NewNotFoundError("report not found")
	}
	if !r.CanBeHandledBy(cmd.HandlerID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError(report.ErrHandledByAnother.Error())
	}

	reason := sanitize.Text(cmd.Reason)
	entry, err := audit.NewEntry(cmd.HandlerID, "dismiss_report", reason, map[string]interface{}{
		"report_id": r.ID(),
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to build audit entry")
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write audit entry", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to write audit entry")
	}

	if err := r.Dismiss(cmd.HandlerID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update dismissed report", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to dismiss report")
	}

	if err := uc.fanout.PurgeReportNotifications(ctx, r.ID(), cmd.HandlerID); err != nil {
		uc.logger.Warnw("failed to purge report notifications", "report_id", r.ID(), "error", err)
	}
	if err := uc.publisher.PublishReportChanged(ctx, r.ID()); err != nil {
		uc.logger.Warnw("failed to publish report change", "report_id", r.ID(), "error", err)
	}

	uc.logger.Infow("report dismissed", "report_id", r.ID(), "handler_id", cmd.HandlerID)
	return &DismissReportResult{Report: toReportDTO(r, nil)}, nil
}
