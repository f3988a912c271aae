package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/team"
)

// MatchRoutes sets up challenge and match routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	matchRepo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	notifier := notification.NewNotificationRepository(db)

	challengeController := NewChallengeController(NewChallengeService(matchRepo, teamRepo, notifier))
	matchController := NewMatchController(NewMatchService(matchRepo, teamRepo, notifier))

	// Public match routes
	router.GET("/matches", matchController.GetRecentMatches)
	router.GET("/matches/team/:team_id", matchController.GetTeamMatches)
	router.GET("/matches/:match_id", matchController.GetMatchByID)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/challenges", challengeController.CreateChallenge)
		authRoutes.GET("/challenges/my", challengeController.GetMyChallenges)
		authRoutes.GET("/challenges/pending", challengeController.GetPendingChallenges)
		authRoutes.PATCH("/challenges/:id/respond", challengeController.RespondToChallenge)

		authRoutes.POST("/matches", matchController.RecordResult)
	}
}
