package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/matchday-app/matchday/internal/team"
	"github.com/matchday-app/matchday/internal/user"
)

type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "PENDING"
	ChallengeAccepted  ChallengeStatus = "ACCEPTED"
	ChallengeDeclined  ChallengeStatus = "DECLINED"
	ChallengeCompleted ChallengeStatus = "COMPLETED"
	ChallengeCancelled ChallengeStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are permitted.
func (s ChallengeStatus) Terminal() bool {
	return s == ChallengeDeclined || s == ChallengeCompleted || s == ChallengeCancelled
}

type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchOngoing   MatchStatus = "ONGOING"
	MatchCompleted MatchStatus = "COMPLETED"
	MatchCancelled MatchStatus = "CANCELLED"
)

// MatchResult is the outcome from the challenging (home) team's perspective.
type MatchResult string

const (
	ResultWin  MatchResult = "WIN"
	ResultLoss MatchResult = "LOSS"
	ResultDraw MatchResult = "DRAW"
)

// Rating deltas applied inside the result-recording transaction. Both sides
// gain on a draw.
const (
	RatingWinDelta  = 25
	RatingDrawDelta = 5
)

// Challenge is a proposal from one team to another to play a match.
// fromTeam's sport always equals toTeam's sport; the check runs at creation.
type Challenge struct {
	gorm.Model
	FromTeamID   uint            `json:"from_team_id" gorm:"index;not null"`
	FromTeam     *team.Team      `json:"from_team,omitempty" gorm:"foreignKey:FromTeamID"`
	ToTeamID     uint            `json:"to_team_id" gorm:"index;not null"`
	ToTeam       *team.Team      `json:"to_team,omitempty" gorm:"foreignKey:ToTeamID"`
	FromUserID   uint            `json:"from_user_id" gorm:"index;not null"`
	FromUser     *user.User      `json:"from_user,omitempty" gorm:"foreignKey:FromUserID"`
	Sport        string          `json:"sport" gorm:"index;not null"`
	ProposedDate time.Time       `json:"proposed_date" gorm:"not null"`
	ProposedTime string          `json:"proposed_time" gorm:"not null"` // "HH:MM"
	Venue        string          `json:"venue,omitempty"`
	Message      string          `json:"message,omitempty" gorm:"type:text"`
	Status       ChallengeStatus `json:"status" gorm:"index;not null;default:'PENDING'"`
}

// Match records an accepted challenge's game. At most one row exists per
// challenge; the home side is always the challenge's fromTeam.
type Match struct {
	gorm.Model
	ChallengeID      uint        `json:"challenge_id" gorm:"uniqueIndex;not null"`
	HomeTeamID       uint        `json:"home_team_id" gorm:"index;not null"`
	HomeTeam         *team.Team  `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID"`
	AwayTeamID       uint        `json:"away_team_id" gorm:"index;not null"`
	AwayTeam         *team.Team  `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID"`
	HomeScore        int         `json:"home_score" gorm:"default:0"`
	AwayScore        int         `json:"away_score" gorm:"default:0"`
	Sport            string      `json:"sport" gorm:"index;not null"`
	Date             time.Time   `json:"date"`
	Venue            string      `json:"venue,omitempty"`
	Status           MatchStatus `json:"status" gorm:"index;not null;default:'SCHEDULED'"`
	WinnerID         *uint       `json:"winner_id,omitempty" gorm:"index"` // nil on draw or while scheduled
	HomeRatingChange int         `json:"home_rating_change" gorm:"default:0"`
	AwayRatingChange int         `json:"away_rating_change" gorm:"default:0"`
}

// DetermineResult classifies the score from the home (challenging) team's side.
func DetermineResult(homeScore, awayScore int) MatchResult {
	switch {
	case homeScore > awayScore:
		return ResultWin
	case homeScore < awayScore:
		return ResultLoss
	default:
		return ResultDraw
	}
}
