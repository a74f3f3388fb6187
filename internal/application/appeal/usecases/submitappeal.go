package usecases

import (
	"context"
	"time"

	appnotif "crest/internal/application/notification"
	"crest/internal/domain/appeal"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// SubmitAppealCommand represents the input for appealing a moderation
// decision.
type SubmitAppealCommand struct {
	UserID  uint
	Message string
}

// AppealDTO is the flattened read model for an appeal.
type AppealDTO struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	ReviewedBy *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote string     `json:"review_note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SubmitAppealResult represents the output of filing an appeal.
type SubmitAppealResult struct {
	Appeal AppealDTO
}

// SubmitAppealUseCase handles a user appealing a moderation decision and
// fans the appeal out to staff.
type SubmitAppealUseCase struct {
	appealRepo appeal.Repository
	fanout     *appnotif.FanoutService
	logger     logger.Interface
}

func NewSubmitAppealUseCase(appealRepo appeal.Repository, fanout *appnotif.FanoutService, log logger.Interface) *SubmitAppealUseCase {
	return &SubmitAppealUseCase{
		appealRepo: appealRepo,
		fanout:     fanout,
		logger:     log,
	}
}

func (uc *SubmitAppealUseCase) Execute(ctx context.Context, cmd SubmitAppealCommand) (*SubmitAppealResult, error) {
	a, err := appeal.NewAppeal(cmd.UserID, sanitize.Text(cmd.Message))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.appealRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save appeal", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to submit appeal")
	}

	if err := uc.fanout.NotifyStaffOfNewAppeal(ctx, a); err != nil {
		uc.logger.Warnw("staff fan-out for new appeal failed", "appeal_id", a.ID(), "error", err)
	}

	uc.logger.Infow("appeal submitted", "appeal_id", a.ID(), "user_id", cmd.UserID)
	return &SubmitAppealResult{Appeal: toAppealDTO(a, nil)}, nil
}

func toAppealDTO(a *appeal.Appeal, names map[uint]string) AppealDTO {
	return AppealDTO{
		ID:         a.ID(),
		UserID:     a.UserID(),
		UserName:   names[a.UserID()],
		Message:    a.Message(),
		Status:     string(a.Status()),
		ReviewedBy: a.ReviewedBy(),
		ReviewedAt: a.ReviewedAt(),
		ReviewNote: a.ReviewNote(),
		CreatedAt:  a.CreatedAt(),
	}
}
