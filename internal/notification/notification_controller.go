package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/pkg/responses"
)

// NotificationController handles notification HTTP requests.
type NotificationController struct {
	repo NotificationRepository
}

// NewNotificationController creates a new notification controller.
func NewNotificationController(repo NotificationRepository) *NotificationController {
	return &NotificationController{repo: repo}
}

// NotificationList is the payload of the list endpoint.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}

// GetMyNotifications godoc
// @Summary List the caller's notifications
// @Tags Notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=NotificationList}
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	unreadOnly := c.Query("unreadOnly") == "true"

	notifications, total, err := nc.repo.GetByUser(userID, unreadOnly, page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	unreadCount, err := nc.repo.CountUnread(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to count unread notifications")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", NotificationList{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	}, total, page, limit)
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /notifications/{notification_id}/read [patch]
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	notifID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	n, err := nc.repo.GetByIDForUser(uint(notifID), userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve notification")
		return
	}
	if n == nil {
		responses.SendError(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := nc.repo.MarkRead(n.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead godoc
// @Summary Mark all the caller's notifications as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /notifications/mark-all-read [patch]
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := nc.repo.MarkAllRead(userID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "All notifications marked as read", nil)
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /notifications/{notification_id} [delete]
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	notifID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	n, err := nc.repo.GetByIDForUser(uint(notifID), userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve notification")
		return
	}
	if n == nil {
		responses.SendError(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := nc.repo.Delete(n.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete notification")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Notification deleted successfully", nil)
}
