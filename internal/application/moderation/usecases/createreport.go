package usecases

import (
	"context"

	appnotif "crest/internal/application/notification"
	"crest/internal/domain/report"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// CreateReportCommand represents the input for filing a report. Exactly
// one of ReportedUserID or ContentID/ContentType must be set.
type CreateReportCommand struct {
	ReporterUserID uint
	ReportedUserID uint
	ContentID      uint
	ContentType    string
	Reason         string
	Urgent         bool
}

// CreateReportResult represents the output of filing a report.
type CreateReportResult struct {
	Report ReportDTO
}

// CreateReportUseCase handles filing an account or content report and
// fanning out the staff notification.
type CreateReportUseCase struct {
	reportRepo report.Repository
	fanout     *appnotif.FanoutService
	logger     logger.Interface
}

func NewCreateReportUseCase(reportRepo report.Repository, fanout *appnotif.FanoutService, log logger.Interface) *CreateReportUseCase {
	return &CreateReportUseCase{
		reportRepo: reportRepo,
		fanout:     fanout,
		logger:     log,
	}
}

func (uc *CreateReportUseCase) Execute(ctx context.Context, cmd CreateReportCommand) (*CreateReportResult, error) {
	reason := sanitize.Text(cmd.Reason)

	var r *report.Report
	var err error
	switch {
	case cmd.ReportedUserID != 0 && cmd.ContentID != 0:
		return nil, errors.NewValidationError("a report targets either an account or a content item, not both")
	case cmd.ReportedUserID != 0:
		r, err = report.NewAccountReport(cmd.ReporterUserID, cmd.ReportedUserID, reason, cmd.Urgent)
	case cmd.ContentID != 0:
		if _, tErr := report.ContentTableFor(cmd.ContentType); tErr != nil {
			return nil, errors.NewValidationError(tErr.Error())
		}
		r, err = report.NewContentReport(cmd.ReporterUserID, cmd.ContentID, cmd.ContentType, reason, cmd.Urgent)
	default:
		return nil, errors.NewValidationError("report target is required")
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reportRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save report", "reporter_user_id", cmd.ReporterUserID, "error", err)
		return nil, errors.NewInternalError("failed to create report")
	}

	if err := uc.fanout.NotifyStaffOfNewReport(ctx, r); err != nil {
		uc.logger.Warnw("staff fan-out for new report failed", "report_id", r.ID(), "error", err)
	}

	uc.logger.Infow("report created", "report_id", r.ID(), "urgent", r.Urgent())
	return &CreateReportResult{Report: toReportDTO(r, nil)}, nil
}
