package post

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/matchday-app/matchday/internal/user"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &Post{}, &PostLike{}, &PostComment{}))
	return db
}

func seedAuthor(t *testing.T, db *gorm.DB) user.User {
	t.Helper()
	author := user.User{Name: "Alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, db.Create(&author).Error)
	return author
}

func TestGetPostsByAuthorTypeFilter(t *testing.T) {
	db := openTestDB(t)
	author := seedAuthor(t, db)
	repo := NewPostRepository(db)

	require.NoError(t, repo.CreatePost(&Post{AuthorID: author.ID, MediaURL: "/public/uploads/a.jpg", Type: PostTypePhoto}))
	require.NoError(t, repo.CreatePost(&Post{AuthorID: author.ID, MediaURL: "/public/uploads/b.mp4", Type: PostTypeVideo}))

	all, err := repo.GetPostsByAuthor(author.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	photos, err := repo.GetPostsByAuthor(author.ID, PostTypePhoto)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, PostTypePhoto, photos[0].Type)
}

func TestLikesAndComments(t *testing.T) {
	db := openTestDB(t)
	author := seedAuthor(t, db)
	repo := NewPostRepository(db)

	p := Post{AuthorID: author.ID, MediaURL: "/public/uploads/a.jpg", Type: PostTypePhoto}
	require.NoError(t, repo.CreatePost(&p))

	require.NoError(t, repo.CreateLike(&PostLike{PostID: p.ID, UserID: author.ID}))
	require.NoError(t, repo.CreateComment(&PostComment{PostID: p.ID, UserID: author.ID, Content: "great game"}))

	count, err := repo.CountLikes(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	posts, err := repo.GetPostsByAuthor(author.ID, "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].LikeCount)
	assert.Equal(t, int64(1), posts[0].CommentCount)

	// Unlike
	like, err := repo.GetLike(p.ID, author.ID)
	require.NoError(t, err)
	require.NotNil(t, like)
	require.NoError(t, repo.DeleteLike(like.ID))

	count, err = repo.CountLikes(p.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRelikeAfterUnlike(t *testing.T) {
	db := openTestDB(t)
	author := seedAuthor(t, db)
	repo := NewPostRepository(db)

	p := Post{AuthorID: author.ID, MediaURL: "/public/uploads/a.jpg", Type: PostTypePhoto}
	require.NoError(t, repo.CreatePost(&p))

	require.NoError(t, repo.CreateLike(&PostLike{PostID: p.ID, UserID: author.ID}))
	like, err := repo.GetLike(p.ID, author.ID)
	require.NoError(t, err)
	require.NotNil(t, like)
	require.NoError(t, repo.DeleteLike(like.ID))

	// The unlike must release the (post, user) uniqueness for the next like.
	require.NoError(t, repo.CreateLike(&PostLike{PostID: p.ID, UserID: author.ID}))

	count, err := repo.CountLikes(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeletePostRemovesLikesAndComments(t *testing.T) {
	db := openTestDB(t)
	author := seedAuthor(t, db)
	repo := NewPostRepository(db)

	p := Post{AuthorID: author.ID, MediaURL: "/public/uploads/a.jpg", Type: PostTypePhoto}
	require.NoError(t, repo.CreatePost(&p))
	require.NoError(t, repo.CreateLike(&PostLike{PostID: p.ID, UserID: author.ID}))
	require.NoError(t, repo.CreateComment(&PostComment{PostID: p.ID, UserID: author.ID, Content: "nice"}))

	require.NoError(t, repo.DeletePost(p.ID))

	reloaded, err := repo.GetPostByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded)

	var likeCount, commentCount int64
	require.NoError(t, db.Model(&PostLike{}).Where("post_id = ?", p.ID).Count(&likeCount).Error)
	require.NoError(t, db.Model(&PostComment{}).Where("post_id = ?", p.ID).Count(&commentCount).Error)
	assert.Zero(t, likeCount)
	assert.Zero(t, commentCount)
}
