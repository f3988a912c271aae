package post

import (
	"gorm.io/gorm"

	"github.com/matchday-app/matchday/internal/user"
)

// PostType classifies the media attached to a post.
type PostType string

const (
	PostTypePhoto PostType = "PHOTO"
	PostTypeVideo PostType = "VIDEO"
	PostTypeText  PostType = "TEXT"
)

// ValidPostType reports whether t is a known post type.
func ValidPostType(t PostType) bool {
	switch t {
	case PostTypePhoto, PostTypeVideo, PostTypeText:
		return true
	}
	return false
}

// Post is a media gallery entry on a user's profile.
type Post struct {
	gorm.Model
	AuthorID uint      `json:"author_id" gorm:"not null;index"`
	Author   user.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	MediaURL string    `json:"media_url" gorm:"not null"`
	Type     PostType  `json:"type" gorm:"type:varchar(10);not null"`
	Caption  string    `json:"caption,omitempty" gorm:"type:text"`

	Likes    []PostLike    `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	Comments []PostComment `json:"comments,omitempty" gorm:"foreignKey:PostID"`

	LikeCount    int64 `json:"like_count" gorm:"-"`
	CommentCount int64 `json:"comment_count" gorm:"-"`
}

// PostLike records a single user's like on a post. One per user per post.
type PostLike struct {
	gorm.Model
	PostID uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_post_like"`
	UserID uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_post_like"`
	User   user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// PostComment is a comment left on a post.
type PostComment struct {
	gorm.Model
	PostID  uint      `json:"post_id" gorm:"not null;index"`
	UserID  uint      `json:"user_id" gorm:"not null"`
	User    user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content string    `json:"content" gorm:"type:text;not null"`
}
