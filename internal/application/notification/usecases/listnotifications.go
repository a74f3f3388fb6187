package usecases

import (
	"context"
	"time"

	"crest/internal/domain/notification"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// ListNotificationsCommand represents the input for listing a user's notifications.
type ListNotificationsCommand struct {
	UserID   uint
	Page     int
	PageSize int
}

// NotificationDTO is the flattened read model returned to the interface layer.
type NotificationDTO struct {
	ID        uint                   `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	ActionURL string                 `json:"action_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ListNotificationsResult represents the output of listing notifications.
type ListNotificationsResult struct {
	Notifications []NotificationDTO
	Total         int64
	Page          int
	PageSize      int
}

// ListNotificationsUseCase handles listing a user's notifications newest first.
type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, log logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	offset := (cmd.Page - 1) * cmd.PageSize
	items, total, err := uc.notificationRepo.ListByUserID(ctx, cmd.UserID, cmd.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, toNotificationDTO(n))
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
		Page:          cmd.Page,
		PageSize:      cmd.PageSize,
	}, nil
}

func toNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.Read(),
		ActionURL: n.ActionURL(),
		Metadata:  n.Metadata(),
		CreatedAt: n.CreatedAt(),
	}
}
