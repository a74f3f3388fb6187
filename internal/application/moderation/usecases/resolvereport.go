package usecases

import (
	"context"
	"fmt"
	"time"

	"crest/internal/application/events"
	appnotif "crest/internal/application/notification"
	"crest/internal/domain/audit"
	"crest/internal/domain/content"
	"crest/internal/domain/notification"
	"crest/internal/domain/report"
	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
	"crest/internal/shared/sanitize"
)

// ResolveReportCommand represents the input for resolving a report with a
// moderation action.
type ResolveReportCommand struct {
	ReportID  uint
	HandlerID uint
	IsAdmin   bool
	Action    report.ResolutionAction
}

// ResolveReportResult represents the output of a resolution.
type ResolveReportResult struct {
	Report ReportDTO
}

// ResolveReportUseCase executes the resolution sequence: validate the
// action, apply the remedy, write the audit entry, then transition the
// report and purge other staff's notifications.
//
// The sequence is deliberately non-atomic. A failure while applying the
// remedy or writing the audit entry aborts before the terminal transition,
// leaving the report in_progress for a retry. Outbound notifications and
// emails are side effects: logged and skipped on failure, never a reason
// to abort.
type ResolveReportUseCase struct {
	reportRepo  report.Repository
	userRepo    user.Repository
	contentRepo content.Repository
	auditRepo   audit.Repository
	fanout      *appnotif.FanoutService
	publisher   events.Publisher
	logger      logger.Interface
}

func NewResolveReportUseCase(
	reportRepo report.Repository,
	userRepo user.Repository,
	contentRepo content.Repository,
	auditRepo audit.Repository,
	fanout *appnotif.FanoutService,
	publisher events.Publisher,
	log logger.Interface,
) *ResolveReportUseCase {
	return &ResolveReportUseCase{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		auditRepo:   auditRepo,
		fanout:      fanout,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *ResolveReportUseCase) Execute(ctx context.Context, cmd ResolveReportCommand) (*ResolveReportResult, error) {
	if cmd.ReportID == 0 {
		return nil, errors.NewValidationError("report ID is required")
	}
	if cmd.HandlerID == 0 {
		return nil, errors.NewValidationError("handler ID is required")
	}

	action := cmd.Action
	action.Reason = sanitize.Text(action.Reason)
	action.Message = sanitize.Text(action.Message)

	// Step 1: reject an incomplete action before any write.
	if err := action.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	r, err := uc.reportRepo.GetByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, errors.NewNotFoundError("report not found")
	}
	if !r.CanBeHandledBy(cmd.HandlerID, cmd.IsAdmin) {
		return nil, errors.NewForbiddenError(report.ErrHandledByAnother.Error())
	}
	if r.Status().IsTerminal() {
		return nil, errors.NewConflictError("report is already closed")
	}
	if err := uc.checkTarget(r, action); err != nil {
		return nil, err
	}

	// Step 2: apply the remedy.
	if err := uc.applyAction(ctx, r, action); err != nil {
		return nil, err
	}

	// Step 3: audit entry, before the terminal transition so a crash
	// between the two leaves an auditable in_progress report rather than a
	// closed report with no record.
	if err := uc.writeAudit(ctx, r, cmd.HandlerID, action); err != nil {
		return nil, err
	}

	// Step 4: terminal transition and cleanup.
	if err := r.Resolve(cmd.HandlerID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update resolved report", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to resolve report")
	}

	if err := uc.fanout.PurgeReportNotifications(ctx, r.ID(), cmd.HandlerID); err != nil {
		uc.logger.Warnw("failed to purge report notifications", "report_id", r.ID(), "error", err)
	}
	if err := uc.publisher.PublishReportChanged(ctx, r.ID()); err != nil {
		uc.logger.Warnw("failed to publish report change", "report_id", r.ID(), "error", err)
	}

	uc.logger.Infow("report resolved",
		"report_id", r.ID(),
		"handler_id", cmd.HandlerID,
		"action", action.AuditAction(),
	)
	return &ResolveReportResult{Report: toReportDTO(r, nil)}, nil
}

// checkTarget verifies the action type matches what the report actually
// references, so a content action never runs against an account report.
func (uc *ResolveReportUseCase) checkTarget(r *report.Report, action report.ResolutionAction) error {
	switch action.Type {
	case report.ActionTypeAccount:
		if r.ReportedUserID() == nil {
			return errors.NewValidationError("account action requires a reported user")
		}
	case report.ActionTypeContent:
		if r.ContentID() == nil {
			return errors.NewValidationError("content action requires reported content")
		}
	}
	return nil
}

func (uc *ResolveReportUseCase) applyAction(ctx context.Context, r *report.Report, action report.ResolutionAction) error {
	switch action.Type {
	case report.ActionTypeWarning:
		return uc.applyWarning(ctx, r, action)
	case report.ActionTypeAccount:
		return uc.applyAccountAction(ctx, r, action)
	case report.ActionTypeContent:
		return uc.applyContentAction(ctx, r, action)
	}
	return errors.NewValidationError(fmt.Sprintf("unknown resolution type: %s", action.Type))
}

func (uc *ResolveReportUseCase) applyWarning(ctx context.Context, r *report.Report, action report.ResolutionAction) error {
	targetID, err := uc.targetUserID(ctx, r)
	if err != nil {
		return err
	}
	if targetID == 0 {
		return errors.NewValidationError("warning target could not be determined")
	}

	// The warning IS the notification; its delivery is the remedy and
	// therefore not skippable.
	err = uc.fanout.NotifyUser(ctx, targetID, notification.TypeWarning,
		"[URGENT] Moderation warning", action.Message,
		map[string]interface{}{notification.MetaReportID: r.ID()},
	)
	if err != nil {
		uc.logger.Errorw("failed to deliver warning", "report_id", r.ID(), "error", err)
		return errors.NewInternalError("failed to deliver warning")
	}
	return nil
}

func (uc *ResolveReportUseCase) applyAccountAction(ctx context.Context, r *report.Report, action report.ResolutionAction) error {
	target, err := uc.userRepo.GetByID(ctx, *r.ReportedUserID())
	if err != nil {
		return errors.NewNotFoundError("reported user not found")
	}

	var summary string
	switch action.Action {
	case report.AccountActionSuspend:
		until := time.Now().UTC().Add(time.Duration(action.DurationHours) * time.Hour)
		if err := target.Suspend(until); err != nil {
			return errors.NewValidationError(err.Error())
		}
		summary = fmt.Sprintf("Your account has been suspended for %d hours", action.DurationHours)
	case report.AccountActionReadonly:
		target.MakeReadonly()
		summary = "Your account has been placed in read-only mode"
	case report.AccountActionDelete:
		target.Deactivate()
		summary = "Your account has been deactivated"
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown account action: %s", action.Action))
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to apply account action", "report_id", r.ID(), "user_id", target.ID(), "error", err)
		return errors.NewInternalError("failed to apply account action")
	}

	if err := uc.fanout.NotifyUser(ctx, target.ID(), notification.TypeAccountAction,
		"Account action taken", summary,
		map[string]interface{}{notification.MetaReportID: r.ID()},
	); err != nil {
		uc.logger.Warnw("account action notification failed", "report_id", r.ID(), "error", err)
	}
	if action.Action == report.AccountActionDelete {
		uc.fanout.SendAccountActionEmail(ctx, target.Email(), action.Action, action.Reason)
	}
	return nil
}

func (uc *ResolveReportUseCase) applyContentAction(ctx context.Context, r *report.Report, action report.ResolutionAction) error {
	table, err := report.ContentTableFor(r.ContentType())
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	ownerID, err := uc.contentRepo.OwnerID(ctx, table, *r.ContentID())
	if err != nil {
		uc.logger.Warnw("failed to resolve content owner", "report_id", r.ID(), "error", err)
		ownerID = 0
	}

	if err := uc.contentRepo.DeleteByID(ctx, table, *r.ContentID()); err != nil {
		uc.logger.Errorw("failed to delete reported content", "report_id", r.ID(), "error", err)
		return errors.NewInternalError("failed to delete reported content")
	}

	if ownerID != 0 {
		if err := uc.fanout.NotifyUser(ctx, ownerID, notification.TypeContentAction,
			"Content removed",
			fmt.Sprintf("Your %s was removed by moderation", r.ContentType()),
			map[string]interface{}{notification.MetaReportID: r.ID()},
		); err != nil {
			uc.logger.Warnw("content action notification failed", "report_id", r.ID(), "error", err)
		}
	}
	return nil
}

// targetUserID picks the user a warning lands on: the reported account, or
// the owner of the reported content.
func (uc *ResolveReportUseCase) targetUserID(ctx context.Context, r *report.Report) (uint, error) {
	if r.ReportedUserID() != nil {
		return *r.ReportedUserID(), nil
	}

	table, err := report.ContentTableFor(r.ContentType())
	if err != nil {
		return 0, errors.NewValidationError(err.Error())
	}
	ownerID, err := uc.contentRepo.OwnerID(ctx, table, *r.ContentID())
	if err != nil {
		uc.logger.Errorw("failed to resolve content owner", "report_id", r.ID(), "error", err)
		return 0, errors.NewInternalError("failed to resolve warning target")
	}
	return ownerID, nil
}

func (uc *ResolveReportUseCase) writeAudit(ctx context.Context, r *report.Report, actorID uint, action report.ResolutionAction) error {
	payload := map[string]interface{}{
		"report_id":      r.ID(),
		"type":           string(action.Type),
		"action":         action.Action,
		"duration_hours": action.DurationHours,
		"message":        action.Message,
	}
	if r.ReportedUserID() != nil {
		payload["reported_user_id"] = *r.ReportedUserID()
	}
	if r.ContentID() != nil {
		payload["content_id"] = *r.ContentID()
		payload["content_type"] = r.ContentType()
	}

	entry, err := audit.NewEntry(actorID, action.AuditAction(), action.Reason, payload)
	if err != nil {
		return errors.NewInternalError("failed to build audit entry")
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write audit entry", "report_id", r.ID(), "error", err)
		return errors.NewInternalError("failed to write audit entry")
	}
	return nil
}
