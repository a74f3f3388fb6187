package usecases

import (
	"context"

	appnotif "crest/internal/application/notification"
	"crest/internal/domain/appeal"
	"crest/internal/domain/audit"
	"crest/internal/domain/notification"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// DecideAppealCommand represents the input for accepting or rejecting an
// appeal.
type DecideAppealCommand struct {
	AppealID   uint
	ReviewerID uint
	Accept     bool
	Note       string
}

// DecideAppealResult represents the output of an appeal decision.
type DecideAppealResult struct {
	Appeal AppealDTO
}

// DecideAppealUseCase handles reviewing an appeal. Acceptance lifts the
// appellant's suspension and read-only flag; either outcome writes an
// audit entry, notifies the appellant and purges other staff's
// notifications for the appeal.
type DecideAppealUseCase struct {
	appealRepo appeal.Repository
	userRepo   user.Repository
	auditRepo  audit.Repository
	fanout     *appnotif.FanoutService
	logger     logger.Interface
}

func NewDecideAppealUseCase(
	appealRepo appeal.Repository,
	userRepo user.Repository,
	auditRepo audit.Repository,
	fanout *appnotif.FanoutService,
	log logger.Interface,
) *DecideAppealUseCase {
	return &DecideAppealUseCase{
		appealRepo: appealRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		fanout:     fanout,
		logger:     log,
	}
}

func (uc *DecideAppealUseCase) Execute(ctx context.Context, cmd DecideAppealCommand) (*DecideAppealResult, error) {
	if cmd.AppealID == 0 {
		return nil, errors.NewValidationError("appeal ID is required")
	}
	if cmd.ReviewerID == 0 {
		return nil, errors.NewValidationError("reviewer ID is required")
	}

	a, err := uc.appealRepo.GetByID(ctx, cmd.AppealID)
	if err != nil {
		return nil, errors.NewNotFoundError("appeal not found")
	}

	note := sanitize.Text(cmd.Note)
	if cmd.Accept {
		err = a.Accept(cmd.ReviewerID, note)
	} else {
		err = a.Reject(cmd.ReviewerID, note)
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if cmd.Accept {
		if err := uc.liftRestrictions(ctx, a.UserID()); err != nil {
			return nil, err
		}
	}

	auditAction := "reject_appeal"
	if cmd.Accept {
		auditAction = "accept_appeal"
	}
	entry, err := audit.NewEntry(cmd.ReviewerID, auditAction, note, map[string]interface{}{
		"appeal_id": a.ID(),
		"user_id":   a.UserID(),
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to build audit entry")
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write audit entry", "appeal_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to write audit entry")
	}

	if err := uc.appealRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update appeal", "appeal_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update appeal")
	}

	uc.notifyAppellant(ctx, a, cmd.Accept)

	if err := uc.fanout.PurgeAppealNotifications(ctx, a.ID(), cmd.ReviewerID); err != nil {
		uc.logger.Warnw("failed to purge appeal notifications", "appeal_id", a.ID(), "error", err)
	}

	uc.logger.Infow("appeal decided", "appeal_id", a.ID(), "accepted", cmd.Accept, "reviewer_id", cmd.ReviewerID)
	return &DecideAppealResult{Appeal: toAppealDTO(a, nil)}, nil
}

func (uc *DecideAppealUseCase) liftRestrictions(ctx context.Context, userID uint) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NewNotFoundError("appellant not found")
	}
	u.LiftSuspension()
	u.ClearReadonly()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to lift restrictions", "user_id", userID, "error", err)
		return errors.NewInternalError("failed to lift account restrictions")
	}
	return nil
}

func (uc *DecideAppealUseCase) notifyAppellant(ctx context.Context, a *appeal.Appeal, accepted bool) {
	title := "Your appeal was rejected"
	message := "After review, the moderation decision stands"
	if accepted {
		title = "Your appeal was accepted"
		message = "The restrictions on your account have been lifted"
	}
	if err := uc.fanout.NotifyUser(ctx, a.UserID(), notification.TypeAccountAction, title, message,
		map[string]interface{}{notification.MetaAppealID: a.ID()},
	); err != nil {
		uc.logger.Warnw("appeal decision notification failed", "appeal_id", a.ID(), "error", err)
	}
}
