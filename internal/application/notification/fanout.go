// Package notification implements fan-out of lifecycle events into
// per-recipient notification rows, plus the cleanup of stale rows when a
// report, appeal or ticket reaches a terminal state.
package notification

import (
	"context"
	"fmt"

	"crest/internal/domain/appeal"
	"crest/internal/domain/notification"
	"crest/internal/domain/report"
	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	"crest/internal/shared/logger"
)

// UpdateType selects the canned template for a user-facing ticket update.
type UpdateType string

const (
	UpdateReply        UpdateType = "reply"
	UpdateResolved     UpdateType = "resolved"
	UpdateAssigned     UpdateType = "assigned"
	UpdateStatusChange UpdateType = "status_change"
)

// urgentPrefix is the visual marker convention for urgent/high items; it is
// part of the title, not a separate field.
const urgentPrefix = "[URGENT] "

// EmailSender delivers the optional email side channel. Implementations
// are best-effort; failures never abort the calling workflow.
type EmailSender interface {
	SendTicketEmail(to, ticketNumber string, ticketID uint, body, staffName string) error
	SendAccountActionEmail(to, action, reason string) error
}

// FanoutService translates lifecycle events into notification rows.
//
// Contract: fan-out never propagates an error that would roll back the
// primary action it is attached to. Listing the audience can fail (the
// fan-out "failed to start"); individual recipient inserts are isolated
// and logged.
type FanoutService struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	email            EmailSender
	logger           logger.Interface
}

func NewFanoutService(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	email EmailSender,
	log logger.Interface,
) *FanoutService {
	return &FanoutService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		email:            email,
		logger:           log,
	}
}

// NotifyStaffOfNewTicket creates one notification row per staff member for
// a freshly submitted ticket.
func (s *FanoutService) NotifyStaffOfNewTicket(ctx context.Context, t *ticket.Ticket) error {
	title := "New support ticket"
	if t.Priority().NeedsAttention() {
		title = urgentPrefix + title
	}
	message := fmt.Sprintf("Ticket %s: %s", t.Number(), t.Subject())

	return s.fanOutToStaff(ctx, notification.TypeNewTicket, title, message,
		fmt.Sprintf("/admin/tickets/%d", t.ID()),
		map[string]interface{}{notification.MetaTicketID: t.ID()},
	)
}

// NotifyStaffOfNewReport creates one notification row per staff member for
// a freshly filed report.
func (s *FanoutService) NotifyStaffOfNewReport(ctx context.Context, r *report.Report) error {
	title := "New report"
	if r.Urgent() {
		title = urgentPrefix + title
	}

	var message string
	if r.IsAccountReport() {
		message = fmt.Sprintf("Account report: %s", r.Reason())
	} else {
		message = fmt.Sprintf("Content report (%s): %s", r.ContentType(), r.Reason())
	}

	return s.fanOutToStaff(ctx, notification.TypeNewReport, title, message,
		fmt.Sprintf("/admin/reports/%d", r.ID()),
		map[string]interface{}{notification.MetaReportID: r.ID()},
	)
}

// NotifyStaffOfNewAppeal creates one notification row per staff member for
// a new appeal.
func (s *FanoutService) NotifyStaffOfNewAppeal(ctx context.Context, a *appeal.Appeal) error {
	return s.fanOutToStaff(ctx, notification.TypeNewAppeal,
		"New appeal",
		"A user has appealed a moderation decision",
		fmt.Sprintf("/admin/appeals/%d", a.ID()),
		map[string]interface{}{notification.MetaAppealID: a.ID()},
	)
}

func (s *FanoutService) fanOutToStaff(
	ctx context.Context,
	notificationType notification.Type,
	title, message, actionURL string,
	metadata map[string]interface{},
) error {
	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff for fan-out: %w", err)
	}

	// One insert per recipient with isolated error handling: a failure for
	// one staff member must not starve the rest.
	for _, member := range staff {
		n, err := notification.NewNotification(member.ID(), notificationType, title, message, actionURL, metadata)
		if err != nil {
			s.logger.Errorw("failed to build staff notification", "user_id", member.ID(), "error", err)
			continue
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.Errorw("failed to insert staff notification", "user_id", member.ID(), "error", err)
		}
	}

	return nil
}

// NotifyUserOfTicketUpdate notifies a single user about activity on their
// ticket using a canned template per update type.
func (s *FanoutService) NotifyUserOfTicketUpdate(
	ctx context.Context,
	userID uint,
	ticketID uint,
	ticketNumber string,
	updateType UpdateType,
	staffName string,
) error {
	var title, message string
	switch updateType {
	case UpdateReply:
		title = "New reply to your ticket"
		message = fmt.Sprintf("Your ticket %s has a new reply", ticketNumber)
		if staffName != "" {
			message = fmt.Sprintf("%s replied to your ticket %s", staffName, ticketNumber)
		}
	case UpdateResolved:
		title = "Your ticket has been resolved"
		message = fmt.Sprintf("Your ticket %s has been marked as resolved", ticketNumber)
	case UpdateAssigned:
		title = "Your ticket is being handled"
		message = fmt.Sprintf("Your ticket %s has been assigned to a staff member", ticketNumber)
	case UpdateStatusChange:
		title = "Your ticket status changed"
		message = fmt.Sprintf("The status of your ticket %s was updated", ticketNumber)
	default:
		return fmt.Errorf("unknown ticket update type: %s", updateType)
	}

	n, err := notification.NewNotification(userID, notification.TypeTicketUpdate, title, message,
		fmt.Sprintf("/support/tickets/%d", ticketID),
		map[string]interface{}{notification.MetaTicketID: ticketID},
	)
	if err != nil {
		return err
	}

	return s.notificationRepo.Create(ctx, n)
}

// NotifyUser creates a single moderation-outcome notification (warning,
// account action, content action).
func (s *FanoutService) NotifyUser(
	ctx context.Context,
	userID uint,
	notificationType notification.Type,
	title, message string,
	metadata map[string]interface{},
) error {
	n, err := notification.NewNotification(userID, notificationType, title, message, "", metadata)
	if err != nil {
		return err
	}
	return s.notificationRepo.Create(ctx, n)
}

// SendTicketEmail delivers the email side channel. Best-effort: errors are
// logged and swallowed, never surfaced to the caller.
func (s *FanoutService) SendTicketEmail(ctx context.Context, to, ticketNumber string, ticketID uint, body, staffName string) {
	if s.email == nil || to == "" {
		return
	}
	if err := s.email.SendTicketEmail(to, ticketNumber, ticketID, body, staffName); err != nil {
		s.logger.Warnw("ticket email delivery failed",
			"ticket_id", ticketID,
			"error", err,
		)
	}
}

// SendAccountActionEmail delivers the email hook for account-level
// moderation actions. Best-effort, same contract as SendTicketEmail.
func (s *FanoutService) SendAccountActionEmail(ctx context.Context, to, action, reason string) {
	if s.email == nil || to == "" {
		return
	}
	if err := s.email.SendAccountActionEmail(to, action, reason); err != nil {
		s.logger.Warnw("account action email delivery failed",
			"action", action,
			"error", err,
		)
	}
}

// PurgeReportNotifications removes every staff new_report prompt
// referencing the report except the handler's own rows. Only the prompts
// go; outcome notifications carry the same report_id and must survive.
func (s *FanoutService) PurgeReportNotifications(ctx context.Context, reportID, exceptUserID uint) error {
	return s.notificationRepo.DeleteByMetadataExcept(ctx, notification.TypeNewReport, notification.MetaReportID, reportID, exceptUserID)
}

// PurgeTicketNotifications removes stale staff new_ticket prompts for a
// ticket, leaving the submitter's ticket_update notifications alone.
func (s *FanoutService) PurgeTicketNotifications(ctx context.Context, ticketID, exceptUserID uint) error {
	return s.notificationRepo.DeleteByMetadataExcept(ctx, notification.TypeNewTicket, notification.MetaTicketID, ticketID, exceptUserID)
}

// PurgeAppealNotifications removes stale staff new_appeal prompts for an
// appeal, leaving the appellant's decision notification alone.
func (s *FanoutService) PurgeAppealNotifications(ctx context.Context, appealID, exceptUserID uint) error {
	return s.notificationRepo.DeleteByMetadataExcept(ctx, notification.TypeNewAppeal, notification.MetaAppealID, appealID, exceptUserID)
}
