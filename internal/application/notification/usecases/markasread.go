package usecases

import (
	"context"

	"crest/internal/domain/notification"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// GetUnreadCountCommand represents the input for the unread badge counter.
type GetUnreadCountCommand struct {
	UserID uint
}

// GetUnreadCountResult represents the unread badge counter output.
type GetUnreadCountResult struct {
	Count int64
}

// GetUnreadCountUseCase handles counting a user's unread notifications.
type GetUnreadCountUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewGetUnreadCountUseCase(notificationRepo notification.Repository, log logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{notificationRepo: notificationRepo, logger: log}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, cmd GetUnreadCountCommand) (*GetUnreadCountResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to count unread notifications")
	}
	return &GetUnreadCountResult{Count: count}, nil
}

// MarkAsReadCommand represents the input for acknowledging one notification.
type MarkAsReadCommand struct {
	NotificationID uint
	UserID         uint
}

// MarkAsReadUseCase handles acknowledging a single notification. Only the
// recipient may acknowledge their own rows.
type MarkAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(notificationRepo notification.Repository, log logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{notificationRepo: notificationRepo, logger: log}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.UserID() != cmd.UserID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "notification_id", cmd.NotificationID, "error", err)
		return errors.NewInternalError("failed to mark notification as read")
	}
	return nil
}

// MarkAllAsReadCommand represents the input for acknowledging everything at once.
type MarkAllAsReadCommand struct {
	UserID uint
}

// MarkAllAsReadUseCase handles clearing a user's unread badge in one sweep.
type MarkAllAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(notificationRepo notification.Repository, log logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{notificationRepo: notificationRepo, logger: log}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, cmd MarkAllAsReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to mark notifications as read")
	}
	return nil
}
