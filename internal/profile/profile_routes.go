package profile

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/matchday-app/matchday/internal/middleware"
)

// ProfileRoutes sets up profile routes.
func ProfileRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	profileController := NewProfileController(NewProfileRepository(db))

	// Public profile view
	router.GET("/profile/:user_id", profileController.GetPublicProfile)

	authRoutes := router.Group("/profile")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("", profileController.GetMyProfile)
		authRoutes.PUT("", profileController.UpdateBasicInfo)
		authRoutes.PUT("/social", profileController.UpdateSocialLinks)
		authRoutes.PUT("/preferences", profileController.UpdateSportsPreferences)
		authRoutes.PUT("/privacy", profileController.UpdatePrivacySettings)
	}
}
