package match

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/team"
	"github.com/matchday-app/matchday/internal/user"
	"github.com/matchday-app/matchday/pkg/apperrors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&user.User{},
		&team.Team{}, &team.TeamMember{},
		&Challenge{}, &Match{},
		&notification.Notification{},
	)
	require.NoError(t, err)
	return db
}

type fixture struct {
	db        *gorm.DB
	challenge *ChallengeService
	matches   *MatchService
	ownerA    user.User
	ownerB    user.User
	teamA     team.Team
	teamB     team.Team
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	repo := NewMatchRepository(db)
	teams := team.NewTeamRepository(db)
	notifier := notification.NewNotificationRepository(db)

	f := &fixture{
		db:        db,
		challenge: NewChallengeService(repo, teams, notifier),
		matches:   NewMatchService(repo, teams, notifier),
	}

	f.ownerA = user.User{Name: "Alice", Email: "alice@example.com", Region: "North America", IsActive: true}
	f.ownerB = user.User{Name: "Bob", Email: "bob@example.com", Region: "North America", IsActive: true}
	require.NoError(t, db.Create(&f.ownerA).Error)
	require.NoError(t, db.Create(&f.ownerB).Error)

	f.teamA = team.Team{Name: "North FC", Sport: "Football", Region: "North America", OwnerID: f.ownerA.ID, IsActive: true, Rating: team.DefaultRating, MaxPlayers: 11}
	f.teamB = team.Team{Name: "River FC", Sport: "Football", Region: "North America", OwnerID: f.ownerB.ID, IsActive: true, Rating: team.DefaultRating, MaxPlayers: 11}
	require.NoError(t, db.Create(&f.teamA).Error)
	require.NoError(t, db.Create(&f.teamB).Error)

	return f
}

// sendChallenge creates a PENDING challenge from ownerA's team to teamB.
func (f *fixture) sendChallenge(t *testing.T) *Challenge {
	t.Helper()
	c, err := f.challenge.CreateChallenge(f.ownerA.ID, CreateChallengeInput{
		ToTeamID:     f.teamB.ID,
		ProposedDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ProposedTime: "18:30",
		Venue:        "Central Park",
	})
	require.NoError(t, err)
	return c
}

// acceptedChallenge walks a challenge through creation and acceptance.
func (f *fixture) acceptedChallenge(t *testing.T) *Challenge {
	t.Helper()
	c := f.sendChallenge(t)
	c, err := f.challenge.RespondToChallenge(f.ownerB.ID, c.ID, ResponseAccepted)
	require.NoError(t, err)
	return c
}

func (f *fixture) reloadTeam(t *testing.T, id uint) team.Team {
	t.Helper()
	var reloaded team.Team
	require.NoError(t, f.db.First(&reloaded, id).Error)
	return reloaded
}

func assertRecordInvariant(t *testing.T, tm team.Team) {
	t.Helper()
	assert.Equal(t, tm.MatchesPlayed, tm.Wins+tm.Losses+tm.Draws,
		"wins+losses+draws must equal matchesPlayed for team %d", tm.ID)
}

func TestCreateChallenge(t *testing.T) {
	f := newFixture(t)

	c := f.sendChallenge(t)
	assert.Equal(t, ChallengePending, c.Status)
	assert.Equal(t, f.teamA.ID, c.FromTeamID)
	assert.Equal(t, f.teamB.ID, c.ToTeamID)
	assert.Equal(t, "Football", c.Sport)

	// The target team's owner is notified.
	var n notification.Notification
	require.NoError(t, f.db.Where("user_id = ?", f.ownerB.ID).First(&n).Error)
	assert.Equal(t, notification.TypeChallengeReceived, n.Type)
}

func TestCreateChallengeWithoutMatchingSportTeam(t *testing.T) {
	f := newFixture(t)

	// ownerB's only team is Football; a Basketball target cannot be challenged.
	hooper := user.User{Name: "Cara", Email: "cara@example.com", IsActive: true}
	require.NoError(t, f.db.Create(&hooper).Error)
	hoops := team.Team{Name: "Hoops", Sport: "Basketball", Region: "North America", OwnerID: hooper.ID, IsActive: true, Rating: team.DefaultRating}
	require.NoError(t, f.db.Create(&hoops).Error)

	_, err := f.challenge.CreateChallenge(f.ownerA.ID, CreateChallengeInput{
		ToTeamID:     hoops.ID,
		ProposedDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ProposedTime: "18:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var count int64
	require.NoError(t, f.db.Model(&Challenge{}).Count(&count).Error)
	assert.Zero(t, count, "no challenge row may be created")
}

func TestCreateChallengeDuplicatePending(t *testing.T) {
	f := newFixture(t)
	f.sendChallenge(t)

	_, err := f.challenge.CreateChallenge(f.ownerA.ID, CreateChallengeInput{
		ToTeamID:     f.teamB.ID,
		ProposedDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ProposedTime: "18:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestRespondToChallengeAcceptSchedulesMatch(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	assert.Equal(t, ChallengeAccepted, c.Status)

	var scheduled Match
	require.NoError(t, f.db.Where("challenge_id = ?", c.ID).First(&scheduled).Error)
	assert.Equal(t, MatchScheduled, scheduled.Status)
	assert.Equal(t, f.teamA.ID, scheduled.HomeTeamID, "challenging team is home")
	assert.Equal(t, f.teamB.ID, scheduled.AwayTeamID)
	assert.Nil(t, scheduled.WinnerID)
}

func TestRespondToChallengeOnlyTargetOwner(t *testing.T) {
	f := newFixture(t)
	c := f.sendChallenge(t)

	_, err := f.challenge.RespondToChallenge(f.ownerA.ID, c.ID, ResponseAccepted)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestRespondToChallengeTwice(t *testing.T) {
	f := newFixture(t)
	c := f.sendChallenge(t)

	_, err := f.challenge.RespondToChallenge(f.ownerB.ID, c.ID, ResponseAccepted)
	require.NoError(t, err)

	// The second response fails and the status stays ACCEPTED.
	_, err = f.challenge.RespondToChallenge(f.ownerB.ID, c.ID, ResponseDeclined)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	var reloaded Challenge
	require.NoError(t, f.db.First(&reloaded, c.ID).Error)
	assert.Equal(t, ChallengeAccepted, reloaded.Status)
}

func TestRecordResultWin(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	m, err := f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   3,
		AwayScore:   1,
		MatchDate:   time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, MatchCompleted, m.Status)
	require.NotNil(t, m.WinnerID)
	assert.Equal(t, f.teamA.ID, *m.WinnerID)
	assert.Equal(t, RatingWinDelta, m.HomeRatingChange)
	assert.Equal(t, -RatingWinDelta, m.AwayRatingChange)

	a := f.reloadTeam(t, f.teamA.ID)
	b := f.reloadTeam(t, f.teamB.ID)
	assert.Equal(t, team.DefaultRating+25, a.Rating)
	assert.Equal(t, team.DefaultRating-25, b.Rating)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, 1, a.MatchesPlayed)
	assert.Equal(t, 1, b.MatchesPlayed)
	assertRecordInvariant(t, a)
	assertRecordInvariant(t, b)

	var reloaded Challenge
	require.NoError(t, f.db.First(&reloaded, c.ID).Error)
	assert.Equal(t, ChallengeCompleted, reloaded.Status)
}

func TestRecordResultDraw(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	m, err := f.matches.RecordResult(f.ownerB.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   2,
		AwayScore:   2,
		MatchDate:   time.Now(),
	})
	require.NoError(t, err)

	assert.Nil(t, m.WinnerID, "draws have no winner")

	a := f.reloadTeam(t, f.teamA.ID)
	b := f.reloadTeam(t, f.teamB.ID)
	assert.Equal(t, team.DefaultRating+RatingDrawDelta, a.Rating)
	assert.Equal(t, team.DefaultRating+RatingDrawDelta, b.Rating)
	assert.Equal(t, 1, a.Draws)
	assert.Equal(t, 1, b.Draws)
	assertRecordInvariant(t, a)
	assertRecordInvariant(t, b)
}

func TestRecordResultTwice(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	_, err := f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   3,
		AwayScore:   1,
		MatchDate:   time.Now(),
	})
	require.NoError(t, err)

	_, err = f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   0,
		AwayScore:   5,
		MatchDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Counters keep their first-recording values.
	a := f.reloadTeam(t, f.teamA.ID)
	b := f.reloadTeam(t, f.teamB.ID)
	assert.Equal(t, team.DefaultRating+25, a.Rating)
	assert.Equal(t, team.DefaultRating-25, b.Rating)
	assert.Equal(t, 1, a.MatchesPlayed)
	assert.Equal(t, 1, b.MatchesPlayed)

	var matchCount int64
	require.NoError(t, f.db.Model(&Match{}).Where("challenge_id = ?", c.ID).Count(&matchCount).Error)
	assert.Equal(t, int64(1), matchCount, "at most one match per challenge")
}

func TestRecordResultRequiresAcceptedChallenge(t *testing.T) {
	f := newFixture(t)
	c := f.sendChallenge(t)

	_, err := f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   1,
		AwayScore:   0,
		MatchDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestRecordResultOnlyInvolvedOwners(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	outsider := user.User{Name: "Mallory", Email: "mallory@example.com", IsActive: true}
	require.NoError(t, f.db.Create(&outsider).Error)

	_, err := f.matches.RecordResult(outsider.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   1,
		AwayScore:   0,
		MatchDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestRecordResultNotifiesBothOwners(t *testing.T) {
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	_, err := f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   3,
		AwayScore:   1,
		MatchDate:   time.Now(),
	})
	require.NoError(t, err)

	for _, ownerID := range []uint{f.ownerA.ID, f.ownerB.ID} {
		for _, notifType := range []notification.NotificationType{notification.TypeMatchCompleted, notification.TypeRatingUpdate} {
			var count int64
			require.NoError(t, f.db.Model(&notification.Notification{}).
				Where("user_id = ? AND type = ?", ownerID, notifType).
				Count(&count).Error)
			assert.Equal(t, int64(1), count, "owner %d should get one %s", ownerID, notifType)
		}
	}
}

func TestGetPendingChallenges(t *testing.T) {
	f := newFixture(t)
	c := f.sendChallenge(t)

	pending, err := f.challenge.GetPendingChallenges(f.ownerB.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)

	// The sender has nothing awaiting a response.
	pending, err = f.challenge.GetPendingChallenges(f.ownerA.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDetermineResult(t *testing.T) {
	assert.Equal(t, ResultWin, DetermineResult(3, 1))
	assert.Equal(t, ResultLoss, DetermineResult(0, 2))
	assert.Equal(t, ResultDraw, DetermineResult(2, 2))
	assert.Equal(t, ResultDraw, DetermineResult(0, 0))
}
