package post

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/matchday-app/matchday/internal/middleware"
)

// PostRoutes sets up gallery post routes.
func PostRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	postController := NewPostController(NewPostRepository(db))

	// Public gallery view
	router.GET("/posts/user/:user_id", postController.GetUserPosts)

	authRoutes := router.Group("/posts")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("", postController.CreatePost)
		authRoutes.POST("/:post_id/like", postController.ToggleLike)
		authRoutes.POST("/:post_id/comments", postController.AddComment)
		authRoutes.DELETE("/:post_id", postController.DeletePost)
		authRoutes.DELETE("/comments/:comment_id", postController.DeleteComment)
	}
}
