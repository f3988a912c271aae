package match

import (
	"fmt"
	"log"
	"time"

	"github.com/matchday-app/matchday/internal/notification"
	"github.com/matchday-app/matchday/internal/team"
	"github.com/matchday-app/matchday/pkg/apperrors"
)

const (
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// ChallengeService owns the challenge lifecycle: creation, response and the
// scheduling of the resulting match.
type ChallengeService struct {
	repo     MatchRepository
	teams    team.TeamRepository
	notifier notification.Notifier
}

// NewChallengeService creates a new challenge service.
func NewChallengeService(repo MatchRepository, teams team.TeamRepository, notifier notification.Notifier) *ChallengeService {
	return &ChallengeService{repo: repo, teams: teams, notifier: notifier}
}

// CreateChallengeInput carries a validated challenge proposal.
type CreateChallengeInput struct {
	ToTeamID     uint
	ProposedDate time.Time
	ProposedTime string
	Venue        string
	Message      string
}

// CreateChallenge proposes a match to another team. The challenging team is
// the caller's first active team of the target's sport.
func (s *ChallengeService) CreateChallenge(userID uint, input CreateChallengeInput) (*Challenge, error) {
	toTeam, err := s.teams.GetTeamByID(input.ToTeamID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if toTeam == nil {
		return nil, apperrors.NotFound("Target team not found")
	}
	if !toTeam.IsActive {
		return nil, apperrors.InvalidState("Target team is not active")
	}

	fromTeam, err := s.teams.GetActiveTeamByOwnerAndSport(userID, toTeam.Sport)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if fromTeam == nil {
		return nil, apperrors.Validation(fmt.Sprintf("You must have an active %s team to send challenges", toTeam.Sport))
	}

	existing, err := s.repo.FindPendingChallenge(fromTeam.ID, toTeam.ID, input.ProposedDate, input.ProposedTime)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("You already have a pending challenge with this team for the same date and time")
	}

	challenge := &Challenge{
		FromTeamID:   fromTeam.ID,
		ToTeamID:     toTeam.ID,
		FromUserID:   userID,
		Sport:        fromTeam.Sport,
		ProposedDate: input.ProposedDate,
		ProposedTime: input.ProposedTime,
		Venue:        input.Venue,
		Message:      input.Message,
		Status:       ChallengePending,
	}
	if err := s.repo.CreateChallenge(challenge); err != nil {
		return nil, apperrors.Internal(err)
	}

	// Best-effort: the challenge row is the source of truth, a failed
	// notification never rolls it back.
	if err := s.notifier.Notify(
		toTeam.OwnerID,
		notification.TypeChallengeReceived,
		"New Challenge Received",
		fmt.Sprintf("%s has challenged your team %s to a %s match", fromTeam.Name, toTeam.Name, fromTeam.Sport),
	); err != nil {
		log.Printf("failed to create challenge notification: %v", err)
	}

	return challenge, nil
}

// RespondToChallenge accepts or declines a pending challenge. Only the target
// team's owner may respond, and only while the challenge is PENDING; a second
// response fails rather than no-ops. Accepting schedules the match in the
// same transaction as the status flip.
func (s *ChallengeService) RespondToChallenge(userID, challengeID uint, response string) (*Challenge, error) {
	if response != ResponseAccepted && response != ResponseDeclined {
		return nil, apperrors.Validation(`Response must be either "accepted" or "declined"`)
	}

	challenge, err := s.repo.GetChallengeByID(challengeID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if challenge == nil {
		return nil, apperrors.NotFound("Challenge not found")
	}
	if challenge.ToTeam == nil || challenge.ToTeam.OwnerID != userID {
		return nil, apperrors.Forbidden("You can only respond to challenges for teams you own")
	}
	if challenge.Status != ChallengePending {
		return nil, apperrors.InvalidState("This challenge has already been responded to")
	}

	if response == ResponseAccepted {
		err = s.repo.WithTransaction(func(repo MatchRepository) error {
			if err := repo.UpdateChallengeStatus(challenge.ID, ChallengeAccepted); err != nil {
				return err
			}
			scheduled := &Match{
				ChallengeID: challenge.ID,
				HomeTeamID:  challenge.FromTeamID,
				AwayTeamID:  challenge.ToTeamID,
				Sport:       challenge.Sport,
				Date:        challenge.ProposedDate,
				Venue:       challenge.Venue,
				Status:      MatchScheduled,
			}
			return repo.CreateMatch(scheduled)
		})
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		challenge.Status = ChallengeAccepted
	} else {
		if err := s.repo.UpdateChallengeStatus(challenge.ID, ChallengeDeclined); err != nil {
			return nil, apperrors.Internal(err)
		}
		challenge.Status = ChallengeDeclined
	}

	notifType := notification.TypeChallengeAccepted
	if response == ResponseDeclined {
		notifType = notification.TypeChallengeDeclined
	}
	if err := s.notifier.Notify(
		challenge.FromUserID,
		notifType,
		fmt.Sprintf("Challenge %s", response),
		fmt.Sprintf("%s has %s your challenge", challenge.ToTeam.Name, response),
	); err != nil {
		log.Printf("failed to create challenge response notification: %v", err)
	}

	return challenge, nil
}

// GetMyChallenges lists challenges sent or received by any of the caller's
// active teams.
func (s *ChallengeService) GetMyChallenges(userID uint) ([]Challenge, error) {
	teamIDs, err := s.teams.GetActiveTeamIDsByOwnerID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(teamIDs) == 0 {
		return []Challenge{}, nil
	}
	challenges, err := s.repo.GetChallengesByTeamIDs(teamIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return challenges, nil
}

// GetPendingChallenges lists pending challenges awaiting the caller's response.
func (s *ChallengeService) GetPendingChallenges(userID uint) ([]Challenge, error) {
	teamIDs, err := s.teams.GetActiveTeamIDsByOwnerID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(teamIDs) == 0 {
		return []Challenge{}, nil
	}
	challenges, err := s.repo.GetPendingChallengesForTeamIDs(teamIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return challenges, nil
}
