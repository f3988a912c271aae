package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/pkg/responses"
	"github.com/matchday-app/matchday/pkg/validator"
)

// MatchController handles match HTTP requests.
type MatchController struct {
	service *MatchService
}

// NewMatchController creates a new match controller.
func NewMatchController(service *MatchService) *MatchController {
	return &MatchController{service: service}
}

type RecordResultRequest struct {
	ChallengeID uint   `json:"challengeId" binding:"required"`
	HomeScore   *int   `json:"homeScore" binding:"required,min=0"`
	AwayScore   *int   `json:"awayScore" binding:"required,min=0"`
	MatchDate   string `json:"matchDate"` // ISO-8601, defaults to now
	Venue       string `json:"venue" binding:"max=200"`
}

// RecordResult godoc
// @Summary Record a match result
// @Description Records the final score for an accepted challenge and updates both teams' ratings and records atomically.
// @Tags Matches
// @Accept json
// @Produce json
// @Param result body RecordResultRequest true "Final score"
// @Success 201 {object} responses.APIResponse{data=Match}
// @Failure 400 {object} responses.APIResponse
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) RecordResult(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	matchDate := time.Now()
	if req.MatchDate != "" {
		matchDate, err = time.Parse(time.RFC3339, req.MatchDate)
		if err != nil {
			matchDate, err = time.Parse("2006-01-02", req.MatchDate)
			if err != nil {
				responses.SendError(c, http.StatusBadRequest, "Please provide a valid date in ISO format")
				return
			}
		}
	}

	result, err := mc.service.RecordResult(userID, RecordResultInput{
		ChallengeID: req.ChallengeID,
		HomeScore:   *req.HomeScore,
		AwayScore:   *req.AwayScore,
		MatchDate:   matchDate,
		Venue:       req.Venue,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match result recorded successfully", result)
}

// GetTeamMatches godoc
// @Summary List a team's matches
// @Tags Matches
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Router /matches/team/{team_id} [get]
func (mc *MatchController) GetTeamMatches(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	matches, total, err := mc.service.GetTeamMatches(uint(teamID), page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.APIResponse{data=Match}
// @Failure 404 {object} responses.APIResponse
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	match, err := mc.service.GetMatchByID(uint(matchID))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", match)
}

// GetRecentMatches godoc
// @Summary List recently completed matches
// @Tags Matches
// @Produce json
// @Param sport query string false "Filter by sport"
// @Param region query string false "Filter by region"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} responses.APIResponse{data=[]Match}
// @Router /matches [get]
func (mc *MatchController) GetRecentMatches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	matches, err := mc.service.GetRecentMatches(c.Query("sport"), c.Query("region"), limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", matches)
}
