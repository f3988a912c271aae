package main

import (
	"log"

	"github.com/matchday-app/matchday/config"
	_ "github.com/matchday-app/matchday/docs"
	"github.com/matchday-app/matchday/internal/match"
	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/post"
	"github.com/matchday-app/matchday/internal/team"
	"github.com/matchday-app/matchday/internal/user"
	"github.com/matchday-app/matchday/routes"
)

// @title MatchDay REST API
// @version 1.0
// @description Regional amateur sports team coordination server.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&team.Team{}, &team.TeamMember{},
		&match.Challenge{}, &match.Match{},
		&notification.Notification{},
		&post.Post{}, &post.PostLike{}, &post.PostComment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
