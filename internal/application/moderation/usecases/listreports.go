package usecases

import (
	"context"

	"crest/internal/domain/report"
	vo "crest/internal/domain/report/valueobjects"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ListReportsCommand represents the input for the staff report queue.
type ListReportsCommand struct {
	Status   string
	Urgent   *bool
	Page     int
	PageSize int
}

// ListReportsResult represents the output of a report listing.
type ListReportsResult struct {
	Reports  []ReportDTO
	Total    int64
	Page     int
	PageSize int
}

// ListReportsUseCase handles the filtered report queue with reporter and
// reported-user names batch-resolved.
type ListReportsUseCase struct {
	reportRepo report.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.Repository, userRepo user.Repository, log logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, cmd ListReportsCommand) (*ListReportsResult, error) {
	filter := report.Filter{
		Urgent:   cmd.Urgent,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	if cmd.Status != "" {
		status, err := vo.NewStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	reports, total, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "error", err)
		return nil, errors.NewInternalError("failed to list reports")
	}

	names := uc.resolveNames(ctx, reports)

	dtos := make([]ReportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, toReportDTO(r, names))
	}

	return &ListReportsResult{
		Reports:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListReportsUseCase) resolveNames(ctx context.Context, reports []*report.Report) map[uint]string {
	idSet := make(map[uint]struct{}, len(reports)*2)
	for _, r := range reports {
		idSet[r.ReporterUserID()] = struct{}{}
		if r.ReportedUserID() != nil {
			idSet[*r.ReportedUserID()] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[uint]string{}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve display names for report listing", "error", err)
		return map[uint]string{}
	}

	names := make(map[uint]string, len(users))
	for id, u := range users {
		names[id] = u.DisplayName()
	}
	return names
}
