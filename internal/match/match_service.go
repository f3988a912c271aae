package match

import (
	"fmt"
	"log"
	"time"

	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/team"
	"github.com/matchday-app/matchday/pkg/apperrors"
)

// MatchService owns result recording and the match read paths.
type MatchService struct {
	repo     MatchRepository
	teams    team.TeamRepository
	notifier notification.Notifier
}

// NewMatchService creates a new match service.
func NewMatchService(repo MatchRepository, teams team.TeamRepository, notifier notification.Notifier) *MatchService {
	return &MatchService{repo: repo, teams: teams, notifier: notifier}
}

// RecordResultInput carries a validated match result.
type RecordResultInput struct {
	ChallengeID uint
	HomeScore   int
	AwayScore   int
	MatchDate   time.Time
	Venue       string
}

// RecordResult records the result of an accepted challenge. The match write,
// both teams' counter updates and the challenge completion commit in one
// transaction; either all four effects land or none do. The
// lookup-before-write on the completed match keeps resubmission safe: a retry
// after a failed commit succeeds, a retry after success is rejected as a
// conflict with no counter drift.
func (s *MatchService) RecordResult(userID uint, input RecordResultInput) (*Match, error) {
	challenge, err := s.repo.GetChallengeByID(input.ChallengeID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if challenge == nil {
		return nil, apperrors.NotFound("Challenge not found")
	}

	isFromOwner := challenge.FromTeam != nil && challenge.FromTeam.OwnerID == userID
	isToOwner := challenge.ToTeam != nil && challenge.ToTeam.OwnerID == userID
	if !isFromOwner && !isToOwner {
		return nil, apperrors.Forbidden("Only team owners can record match results")
	}

	// Resubmission is checked before the status gate: a completed challenge
	// with its match already written must answer Conflict, not InvalidState.
	existing, err := s.repo.GetMatchByChallengeID(challenge.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing != nil && existing.Status == MatchCompleted {
		return nil, apperrors.Conflict("Match result already recorded for this challenge")
	}
	if challenge.Status != ChallengeAccepted {
		return nil, apperrors.InvalidState("Can only record results for accepted challenges")
	}

	// Home is the challenging team; the result is classified from its side.
	result := DetermineResult(input.HomeScore, input.AwayScore)

	var winnerID *uint
	var homeDelta, awayDelta int
	var homeOutcome, awayOutcome string
	switch result {
	case ResultWin:
		winnerID = &challenge.FromTeamID
		homeOutcome, awayOutcome = "wins", "losses"
		homeDelta, awayDelta = RatingWinDelta, -RatingWinDelta
	case ResultLoss:
		winnerID = &challenge.ToTeamID
		homeOutcome, awayOutcome = "losses", "wins"
		homeDelta, awayDelta = -RatingWinDelta, RatingWinDelta
	case ResultDraw:
		homeOutcome, awayOutcome = "draws", "draws"
		homeDelta, awayDelta = RatingDrawDelta, RatingDrawDelta
	}

	var recorded *Match
	err = s.repo.WithTransaction(func(repo MatchRepository) error {
		if existing != nil {
			// Challenge acceptance already scheduled the row; complete it in place.
			existing.HomeScore = input.HomeScore
			existing.AwayScore = input.AwayScore
			existing.Date = input.MatchDate
			if input.Venue != "" {
				existing.Venue = input.Venue
			}
			existing.Status = MatchCompleted
			existing.WinnerID = winnerID
			existing.HomeRatingChange = homeDelta
			existing.AwayRatingChange = awayDelta
			if err := repo.SaveMatch(existing); err != nil {
				return err
			}
			recorded = existing
		} else {
			recorded = &Match{
				ChallengeID:      challenge.ID,
				HomeTeamID:       challenge.FromTeamID,
				AwayTeamID:       challenge.ToTeamID,
				HomeScore:        input.HomeScore,
				AwayScore:        input.AwayScore,
				Sport:            challenge.Sport,
				Date:             input.MatchDate,
				Venue:            input.Venue,
				Status:           MatchCompleted,
				WinnerID:         winnerID,
				HomeRatingChange: homeDelta,
				AwayRatingChange: awayDelta,
			}
			if err := repo.CreateMatch(recorded); err != nil {
				return err
			}
		}

		if err := repo.ApplyTeamResult(challenge.FromTeamID, homeOutcome, homeDelta); err != nil {
			return err
		}
		if err := repo.ApplyTeamResult(challenge.ToTeamID, awayOutcome, awayDelta); err != nil {
			return err
		}

		return repo.UpdateChallengeStatus(challenge.ID, ChallengeCompleted)
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.notifyResult(challenge, recorded)

	return recorded, nil
}

// notifyResult tells both owners the match completed and how their rating
// moved. Best-effort only.
func (s *MatchService) notifyResult(challenge *Challenge, match *Match) {
	summary := fmt.Sprintf("%s %d - %d %s", challenge.FromTeam.Name, match.HomeScore, match.AwayScore, challenge.ToTeam.Name)
	sides := []struct {
		ownerID uint
		team    string
		delta   int
	}{
		{challenge.FromTeam.OwnerID, challenge.FromTeam.Name, match.HomeRatingChange},
		{challenge.ToTeam.OwnerID, challenge.ToTeam.Name, match.AwayRatingChange},
	}
	for _, side := range sides {
		if err := s.notifier.Notify(
			side.ownerID,
			notification.TypeMatchCompleted,
			"Match Result Recorded",
			summary,
		); err != nil {
			log.Printf("failed to create match result notification: %v", err)
		}
		if err := s.notifier.Notify(
			side.ownerID,
			notification.TypeRatingUpdate,
			"Team Rating Updated",
			fmt.Sprintf("%s rating changed by %+d", side.team, side.delta),
		); err != nil {
			log.Printf("failed to create rating update notification: %v", err)
		}
	}
}

// GetTeamMatches lists matches a team played in, most recent first.
func (s *MatchService) GetTeamMatches(teamID uint, page, limit int) ([]Match, int64, error) {
	t, err := s.teams.GetTeamByID(teamID)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	if t == nil {
		return nil, 0, apperrors.NotFound("Team not found")
	}
	matches, total, err := s.repo.GetMatchesByTeamID(teamID, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return matches, total, nil
}

// GetMatchByID returns a single match with both teams attached.
func (s *MatchService) GetMatchByID(id uint) (*Match, error) {
	match, err := s.repo.GetMatchByID(id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if match == nil {
		return nil, apperrors.NotFound("Match not found")
	}
	return match, nil
}

// GetRecentMatches is the public leaderboard feed.
func (s *MatchService) GetRecentMatches(sport, region string, limit int) ([]Match, error) {
	matches, err := s.repo.GetRecentMatches(sport, region, limit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return matches, nil
}
