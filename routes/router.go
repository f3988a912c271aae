package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/matchday-app/matchday/config"
	"github.com/matchday-app/matchday/internal/match"
	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/post"
	"github.com/matchday-app/matchday/internal/profile"
	"github.com/matchday-app/matchday/internal/team"
)

func SetupRoutes(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>MatchDay</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>MatchDay ⚽</h1>
					<p>Regional amateur sports team coordination.</p>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	jwtSecret := cfg.JWT.AccessTokenSecret

	team.TeamRoutes(api, config.DB, cfg, jwtSecret)
	match.MatchRoutes(api, config.DB, jwtSecret)
	notification.NotificationRoutes(api, config.DB, jwtSecret)
	profile.ProfileRoutes(api, config.DB, jwtSecret)
	post.PostRoutes(api, config.DB, jwtSecret)

	return r
}
