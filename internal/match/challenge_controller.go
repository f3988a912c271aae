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

// ChallengeController handles challenge HTTP requests.
type ChallengeController struct {
	service *ChallengeService
}

// NewChallengeController creates a new challenge controller.
func NewChallengeController(service *ChallengeService) *ChallengeController {
	return &ChallengeController{service: service}
}

type CreateChallengeRequest struct {
	ToTeamID     uint   `json:"toTeamId" binding:"required"`
	ProposedDate string `json:"proposedDate" binding:"required"` // ISO-8601
	ProposedTime string `json:"proposedTime" binding:"required"` // "HH:MM"
	Venue        string `json:"venue" binding:"max=200"`
	Message      string `json:"message" binding:"max=500"`
}

type RespondChallengeRequest struct {
	Response string `json:"response" binding:"required,oneof=accepted declined"`
}

func parseProposedTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// CreateChallenge godoc
// @Summary Challenge another team
// @Description Proposes a match to the target team from the caller's active team of the same sport.
// @Tags Challenges
// @Accept json
// @Produce json
// @Param challenge body CreateChallengeRequest true "Challenge proposal"
// @Success 201 {object} responses.APIResponse{data=Challenge}
// @Failure 400 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /challenges [post]
func (cc *ChallengeController) CreateChallenge(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	proposedDate, err := time.Parse(time.RFC3339, req.ProposedDate)
	if err != nil {
		// Accept a bare date as well
		proposedDate, err = time.Parse("2006-01-02", req.ProposedDate)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Please provide a valid date in ISO format")
			return
		}
	}
	if !parseProposedTime(req.ProposedTime) {
		responses.SendError(c, http.StatusBadRequest, "Please provide a valid time in HH:MM format")
		return
	}

	challenge, err := cc.service.CreateChallenge(userID, CreateChallengeInput{
		ToTeamID:     req.ToTeamID,
		ProposedDate: proposedDate,
		ProposedTime: req.ProposedTime,
		Venue:        req.Venue,
		Message:      req.Message,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Challenge sent successfully", challenge)
}

// RespondToChallenge godoc
// @Summary Accept or decline a challenge
// @Description Target-team owner only. Accepting schedules the match; a challenge can leave PENDING exactly once.
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param response body RespondChallengeRequest true "accepted or declined"
// @Success 200 {object} responses.APIResponse{data=Challenge}
// @Failure 400 {object} responses.APIResponse
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /challenges/{id}/respond [patch]
func (cc *ChallengeController) RespondToChallenge(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challengeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	var req RespondChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	challenge, err := cc.service.RespondToChallenge(userID, uint(challengeID), req.Response)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Challenge "+req.Response+" successfully", challenge)
}

// GetMyChallenges godoc
// @Summary List challenges involving the caller's teams
// @Tags Challenges
// @Produce json
// @Success 200 {object} responses.APIResponse{data=[]Challenge}
// @Security ApiKeyAuth
// @Router /challenges/my [get]
func (cc *ChallengeController) GetMyChallenges(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challenges, err := cc.service.GetMyChallenges(userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", challenges)
}

// GetPendingChallenges godoc
// @Summary List pending challenges awaiting the caller's response
// @Tags Challenges
// @Produce json
// @Success 200 {object} responses.APIResponse{data=[]Challenge}
// @Security ApiKeyAuth
// @Router /challenges/pending [get]
func (cc *ChallengeController) GetPendingChallenges(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challenges, err := cc.service.GetPendingChallenges(userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", challenges)
}
