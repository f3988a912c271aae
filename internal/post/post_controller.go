package post

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/pkg/responses"
	"github.com/matchday-app/matchday/pkg/validator"
)

// PostController handles gallery post HTTP requests.
type PostController struct {
	repo PostRepository
}

// NewPostController creates a new post controller.
func NewPostController(repo PostRepository) *PostController {
	return &PostController{repo: repo}
}

type CreatePostRequest struct {
	MediaURL string `json:"mediaUrl" binding:"required,max=500"`
	Type     string `json:"type" binding:"required,oneof=PHOTO VIDEO TEXT"`
	Caption  string `json:"caption" binding:"max=1000"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// ToggleLikeResult reports the like state after a toggle.
type ToggleLikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// GetUserPosts godoc
// @Summary List a user's gallery posts
// @Tags Posts
// @Produce json
// @Param user_id path int true "User ID"
// @Param type query string false "Filter by type (PHOTO, VIDEO, TEXT)"
// @Success 200 {object} responses.APIResponse{data=[]Post}
// @Router /posts/user/{user_id} [get]
func (pc *PostController) GetUserPosts(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	postType := PostType(c.Query("type"))
	if postType != "" && !ValidPostType(postType) {
		postType = ""
	}

	posts, err := pc.repo.GetPostsByAuthor(uint(userID), postType)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", posts)
}

// CreatePost godoc
// @Summary Create a gallery post
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post content"
// @Success 201 {object} responses.APIResponse{data=Post}
// @Failure 400 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	post := Post{
		AuthorID: userID,
		MediaURL: req.MediaURL,
		Type:     PostType(req.Type),
		Caption:  req.Caption,
	}
	if err := pc.repo.CreatePost(&post); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Post created successfully", post)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} responses.APIResponse{data=ToggleLikeResult}
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /posts/{post_id}/like [post]
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.repo.GetPostByID(uint(postID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}
	if post == nil {
		responses.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	existing, err := pc.repo.GetLike(post.ID, userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	if existing != nil {
		err = pc.repo.DeleteLike(existing.ID)
	} else {
		err = pc.repo.CreateLike(&PostLike{PostID: post.ID, UserID: userID})
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	count, err := pc.repo.CountLikes(post.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", ToggleLikeResult{
		Liked:     existing == nil,
		LikeCount: count,
	})
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param comment body AddCommentRequest true "Comment content"
// @Success 201 {object} responses.APIResponse{data=PostComment}
// @Failure 400 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /posts/{post_id}/comments [post]
func (pc *PostController) AddComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		responses.SendError(c, http.StatusBadRequest, "Comment content is required")
		return
	}

	post, err := pc.repo.GetPostByID(uint(postID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}
	if post == nil {
		responses.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	comment := PostComment{
		PostID:  post.ID,
		UserID:  userID,
		Content: content,
	}
	if err := pc.repo.CreateComment(&comment); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Comment added successfully", comment)
}

// DeleteComment godoc
// @Summary Delete an own comment
// @Tags Posts
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} responses.APIResponse
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /posts/comments/{comment_id} [delete]
func (pc *PostController) DeleteComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	comment, err := pc.repo.GetCommentByID(uint(commentID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	if comment == nil {
		responses.SendError(c, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.UserID != userID {
		responses.SendError(c, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}

	if err := pc.repo.DeleteComment(comment.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Comment deleted successfully", nil)
}

// DeletePost godoc
// @Summary Delete an own post
// @Tags Posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} responses.APIResponse
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /posts/{post_id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.repo.GetPostByID(uint(postID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if post == nil {
		responses.SendError(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != userID {
		responses.SendError(c, http.StatusForbidden, "Not authorized to delete this post")
		return
	}

	if err := pc.repo.DeletePost(post.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Post deleted successfully", nil)
}
