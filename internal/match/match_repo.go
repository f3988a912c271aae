package match

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/matchday-app/matchday/internal/team"
)

// MatchRepository defines data operations for challenges, matches and the
// team counters they mutate.
type MatchRepository interface {
	// Challenge operations
	CreateChallenge(challenge *Challenge) error
	GetChallengeByID(id uint) (*Challenge, error)
	FindPendingChallenge(fromTeamID, toTeamID uint, proposedDate time.Time, proposedTime string) (*Challenge, error)
	GetChallengesByTeamIDs(teamIDs []uint) ([]Challenge, error)
	GetPendingChallengesForTeamIDs(teamIDs []uint) ([]Challenge, error)
	UpdateChallengeStatus(id uint, status ChallengeStatus) error

	// Match operations
	CreateMatch(match *Match) error
	SaveMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatchByChallengeID(challengeID uint) (*Match, error)
	GetMatchesByTeamID(teamID uint, page, limit int) ([]Match, int64, error)
	GetRecentMatches(sport, region string, limit int) ([]Match, error)

	// ApplyTeamResult applies a result to one team's aggregate counters as
	// server-side relative updates, safe under concurrent recordings.
	// outcome must be "wins", "losses" or "draws".
	ApplyTeamResult(teamID uint, outcome string, ratingDelta int) error

	WithTransaction(txFunc func(MatchRepository) error) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// --- Challenge operations ---

func (r *matchRepository) CreateChallenge(challenge *Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *matchRepository) GetChallengeByID(id uint) (*Challenge, error) {
	var challenge Challenge
	err := r.db.Preload("FromTeam").Preload("ToTeam").Preload("FromUser").First(&challenge, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *matchRepository) FindPendingChallenge(fromTeamID, toTeamID uint, proposedDate time.Time, proposedTime string) (*Challenge, error) {
	var challenge Challenge
	err := r.db.Where(
		"from_team_id = ? AND to_team_id = ? AND status = ? AND proposed_date = ? AND proposed_time = ?",
		fromTeamID, toTeamID, ChallengePending, proposedDate, proposedTime,
	).First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *matchRepository) GetChallengesByTeamIDs(teamIDs []uint) ([]Challenge, error) {
	var challenges []Challenge
	err := r.db.Preload("FromTeam").Preload("ToTeam").Preload("FromUser").
		Where("from_team_id IN ? OR to_team_id IN ?", teamIDs, teamIDs).
		Order("created_at desc").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *matchRepository) GetPendingChallengesForTeamIDs(teamIDs []uint) ([]Challenge, error) {
	var challenges []Challenge
	err := r.db.Preload("FromTeam").Preload("FromUser").
		Where("to_team_id IN ? AND status = ?", teamIDs, ChallengePending).
		Order("created_at desc").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *matchRepository) UpdateChallengeStatus(id uint, status ChallengeStatus) error {
	return r.db.Model(&Challenge{}).Where("id = ?", id).Update("status", status).Error
}

// --- Match operations ---

func (r *matchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *matchRepository) SaveMatch(match *Match) error {
	return r.db.Save(match).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	err := r.db.Preload("HomeTeam").Preload("AwayTeam").First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetMatchByChallengeID(challengeID uint) (*Match, error) {
	var match Match
	err := r.db.Where("challenge_id = ?", challengeID).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetMatchesByTeamID(teamID uint, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{}).Where("home_team_id = ? OR away_team_id = ?", teamID, teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("HomeTeam").Preload("AwayTeam").
		Offset(offset).Limit(limit).Order("created_at desc").
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) GetRecentMatches(sport, region string, limit int) ([]Match, error) {
	var matches []Match

	query := r.db.Model(&Match{}).Preload("HomeTeam").Preload("AwayTeam")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if region != "" {
		query = query.Where(
			"home_team_id IN (?) OR away_team_id IN (?)",
			r.db.Model(&team.Team{}).Select("id").Where("region = ?", region),
			r.db.Model(&team.Team{}).Select("id").Where("region = ?", region),
		)
	}

	if err := query.Order("created_at desc").Limit(limit).Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// ApplyTeamResult issues the counter mutation as a single UPDATE with
// relative expressions so the deltas are applied server-side.
func (r *matchRepository) ApplyTeamResult(teamID uint, outcome string, ratingDelta int) error {
	return r.db.Model(&team.Team{}).Where("id = ?", teamID).UpdateColumns(map[string]interface{}{
		outcome:          gorm.Expr(outcome+" + ?", 1),
		"matches_played": gorm.Expr("matches_played + ?", 1),
		"rating":         gorm.Expr("rating + ?", ratingDelta),
		"updated_at":     time.Now(),
	}).Error
}

func (r *matchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&matchRepository{db: tx})
	})
}
