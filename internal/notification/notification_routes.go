package notification

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/matchday-app/matchday/internal/middleware"
)

// NotificationRoutes sets up all notification routes. Every route requires
// authentication; notifications are only ever visible to their recipient.
func NotificationRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewNotificationRepository(db)
	controller := NewNotificationController(repo)

	authRoutes := router.Group("/notifications")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("", controller.GetMyNotifications)
		authRoutes.PATCH("/mark-all-read", controller.MarkAllAsRead)
		authRoutes.PATCH("/:notification_id/read", controller.MarkAsRead)
		authRoutes.DELETE("/:notification_id", controller.DeleteNotification)
	}
}
