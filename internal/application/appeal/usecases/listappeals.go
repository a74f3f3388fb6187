package usecases

import (
	"context"

	"crest/internal/domain/appeal"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ListAppealsCommand represents the input for the staff appeal queue.
type ListAppealsCommand struct {
	Status   string
	Page     int
	PageSize int
}

// ListAppealsResult represents the output of an appeal listing.
type ListAppealsResult struct {
	Appeals  []AppealDTO
	Total    int64
	Page     int
	PageSize int
}

// ListAppealsUseCase handles the staff appeal queue with appellant names
// batch-resolved.
type ListAppealsUseCase struct {
	appealRepo appeal.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListAppealsUseCase(appealRepo appeal.Repository, userRepo user.Repository, log logger.Interface) *ListAppealsUseCase {
	return &ListAppealsUseCase{
		appealRepo: appealRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (uc *ListAppealsUseCase) Execute(ctx context.Context, cmd ListAppealsCommand) (*ListAppealsResult, error) {
	var status *appeal.Status
	if cmd.Status != "" {
		s := appeal.Status(cmd.Status)
		if !s.IsValid() {
			return nil, errors.NewValidationError("invalid appeal status")
		}
		status = &s
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	appeals, total, err := uc.appealRepo.List(ctx, status, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list appeals", "error", err)
		return nil, errors.NewInternalError("failed to list appeals")
	}

	idSet := make(map[uint]struct{}, len(appeals))
	for _, a := range appeals {
		idSet[a.UserID()] = struct{}{}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := map[uint]string{}
	if len(ids) > 0 {
		users, err := uc.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warnw("failed to resolve appellant names", "error", err)
		} else {
			for id, u := range users {
				names[id] = u.DisplayName()
			}
		}
	}

	dtos := make([]AppealDTO, 0, len(appeals))
	for _, a := range appeals {
		dtos = append(dtos, toAppealDTO(a, names))
	}

	return &ListAppealsResult{
		Appeals:  dtos,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
