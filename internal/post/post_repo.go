package post

import (
	"errors"

	"gorm.io/gorm"
)

// PostRepository defines data access for posts, likes and comments.
type PostRepository interface {
	CreatePost(post *Post) error
	GetPostByID(id uint) (*Post, error)
	GetPostsByAuthor(authorID uint, postType PostType) ([]Post, error)
	DeletePost(id uint) error

	GetLike(postID, userID uint) (*PostLike, error)
	CreateLike(like *PostLike) error
	DeleteLike(id uint) error
	CountLikes(postID uint) (int64, error)

	CreateComment(comment *PostComment) error
	GetCommentByID(id uint) (*PostComment, error)
	DeleteComment(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(post *Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetPostByID(id uint) (*Post, error) {
	var post Post
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPostsByAuthor(authorID uint, postType PostType) ([]Post, error) {
	var posts []Post
	query := r.db.Where("author_id = ?", authorID).
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Comments.User")
	if postType != "" {
		query = query.Where("type = ?", postType)
	}
	err := query.Order("created_at desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].LikeCount = int64(len(posts[i].Likes))
		posts[i].CommentCount = int64(len(posts[i].Comments))
	}
	return posts, nil
}

func (r *postRepository) DeletePost(id uint) error {
	// Remove likes and comments along with the post
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&PostComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, id).Error
	})
}

func (r *postRepository) GetLike(postID, userID uint) (*PostLike, error) {
	var like PostLike
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *postRepository) CreateLike(like *PostLike) error {
	return r.db.Create(like).Error
}

// DeleteLike removes the row outright. A soft delete would keep the
// (post_id, user_id) pair in the unique index and block a later re-like.
func (r *postRepository) DeleteLike(id uint) error {
	return r.db.Unscoped().Delete(&PostLike{}, id).Error
}

func (r *postRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postRepository) CreateComment(comment *PostComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(comment, comment.ID).Error
}

func (r *postRepository) GetCommentByID(id uint) (*PostComment, error) {
	var comment PostComment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(id uint) error {
	return r.db.Delete(&PostComment{}, id).Error
}
