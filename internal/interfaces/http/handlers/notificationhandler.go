package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crest/internal/application/notification/usecases"
	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC usecases.ListNotificationsExecutor
	getUnreadCountUC    usecases.GetUnreadCountExecutor
	markAsReadUC        usecases.MarkAsReadExecutor
	markAllAsReadUC     usecases.MarkAllAsReadExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC usecases.ListNotificationsExecutor,
	getUnreadCountUC usecases.GetUnreadCountExecutor,
	markAsReadUC usecases.MarkAsReadExecutor,
	markAllAsReadUC usecases.MarkAllAsReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		getUnreadCountUC:    getUnreadCountUC,
		markAsReadUC:        markAsReadUC,
		markAllAsReadUC:     markAllAsReadUC,
		logger:              logger.NewLogger(),
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := parsePagination(c)
	result, err := h.listNotificationsUC.Execute(c.Request.Context(), usecases.ListNotificationsCommand{
		UserID:   actor.UserID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// GetUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUnreadCountUC.Execute(c.Request.Context(), usecases.GetUnreadCountCommand{
		UserID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread_count": result.Count})
}

// MarkAsRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markAsReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		UserID:         actor.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markAllAsReadUC.Execute(c.Request.Context(), usecases.MarkAllAsReadCommand{
		UserID: actor.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
