package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matchday-app/matchday/config"
	mw "github.com/matchday-app/matchday/internal/middleware"
)

// TeamRoutes sets up all team-related routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, appConfig)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.GET("/teams/:team_id/members", teamController.GetTeamMembers)
	router.GET("/teams/:team_id/stats", teamController.GetTeamStats)

	// Authenticated routes; ownership checks happen in the handlers
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.PUT("/teams/:team_id", teamController.UpdateTeam)
		authRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)
		authRoutes.GET("/users/me/teams", teamController.GetMyTeams)
	}
}
