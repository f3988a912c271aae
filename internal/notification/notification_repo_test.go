package notification

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))
	return db
}

func TestNotifyAndList(t *testing.T) {
	repo := NewNotificationRepository(openTestDB(t))

	require.NoError(t, repo.Notify(1, TypeChallengeReceived, "New Challenge Received", "Thunder FC has challenged you"))
	require.NoError(t, repo.Notify(1, TypeMatchCompleted, "Match Result Recorded", "Thunder FC 3 - 1 River FC"))
	require.NoError(t, repo.Notify(2, TypeChallengeAccepted, "Challenge accepted", "River FC has accepted your challenge"))

	list, total, err := repo.GetByUser(1, false, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	for _, n := range list {
		assert.Equal(t, uint(1), n.UserID)
		assert.False(t, n.IsRead)
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	repo := NewNotificationRepository(openTestDB(t))

	require.NoError(t, repo.Notify(1, TypeChallengeReceived, "a", "b"))
	require.NoError(t, repo.Notify(1, TypeChallengeDeclined, "c", "d"))

	count, err := repo.CountUnread(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	list, _, err := repo.GetByUser(1, true, 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, repo.MarkRead(list[0].ID))

	count, err = repo.CountUnread(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.MarkAllRead(1))
	count, err = repo.CountUnread(1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetByIDForUserScopesToRecipient(t *testing.T) {
	repo := NewNotificationRepository(openTestDB(t))

	require.NoError(t, repo.Notify(1, TypeRatingUpdate, "Rating changed", "+25"))

	list, _, err := repo.GetByUser(1, false, 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := repo.GetByIDForUser(list[0].ID, 1)
	require.NoError(t, err)
	require.NotNil(t, n)

	// Another user cannot see it.
	n, err = repo.GetByIDForUser(list[0].ID, 2)
	require.NoError(t, err)
	assert.Nil(t, n)
}
