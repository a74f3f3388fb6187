package usecases

import (
	"context"
	stderrors "errors"

	"crest/internal/application/events"
	"crest/internal/domain/report"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ClaimReportCommand represents the input for taking exclusive ownership
// of a pending report.
type ClaimReportCommand struct {
	ReportID  uint
	HandlerID uint
}

// ClaimReportResult represents the output of a claim.
type ClaimReportResult struct {
	Report ReportDTO
}

// ClaimReportUseCase handles the pending to in_progress transition.
// Re-claiming your own report is a no-op; claiming someone else's yields
// an authorization failure.
type ClaimReportUseCase struct {
	reportRepo report.Repository
	publisher  events.Publisher
	logger     logger.Interface
}

func NewClaimReportUseCase(reportRepo report.Repository, publisher events.Publisher, log logger.Interface) *ClaimReportUseCase {
	return &ClaimReportUseCase{
		reportRepo: reportRepo,
		publisher:  publisher,
		logger:     log,
	}
}

func (uc *ClaimReportUseCase) Execute(ctx context.Context, cmd ClaimReportCommand) (*ClaimReportResult, error) {
	if cmd.ReportID == 0 {
		return nil, errors.NewValidationError("report ID is required")
	}

	r, err := uc.reportRepo.GetByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, errors.NewNotFoundError("report not found")
	}

	if err := r.Claim(cmd.HandlerID); err != nil {
		if stderrors.Is(err, report.ErrHandledByAnother) {
			return nil, errors.NewForbiddenError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to claim report", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to claim report")
	}

	if err := uc.publisher.PublishReportChanged(ctx, r.ID()); err != nil {
		uc.logger.Warnw("failed to publish report change", "report_id", r.ID(), "error", err)
	}

	return &ClaimReportResult{Report: toReportDTO(r, nil)}, nil
}
