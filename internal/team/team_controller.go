package team

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/config"
	"github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/pkg/responses"
	"github.com/matchday-app/matchday/pkg/validator"
)

const RoleCaptain = "captain"

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo      TeamRepository
	appConfig *config.Config
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs ---

type CreateTeamRequest struct {
	Name         string `json:"name" binding:"required,min=3,max=50"`
	Sport        string `json:"sport" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Description  string `json:"description" binding:"max=500"`
	MaxPlayers   int    `json:"maxPlayers" binding:"required,gte=5,lte=50"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"required"`
}

type UpdateTeamRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	MaxPlayers   *int    `json:"maxPlayers" binding:"omitempty,gte=5,lte=50"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
}

// TeamStats is the aggregate view returned by the stats endpoint.
type TeamStats struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	Rating        int    `json:"rating"`
	MatchesPlayed int    `json:"matchesPlayed"`
	WinPercentage int    `json:"winPercentage"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team owned by the authenticated user, who is added as its first member.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team data"
// @Success 201 {object} responses.APIResponse{data=Team}
// @Failure 400 {object} responses.APIResponse
// @Failure 401 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}
	if !ValidSport(req.Sport) {
		responses.SendError(c, http.StatusBadRequest, "Please select a valid sport")
		return
	}
	if !ValidRegion(req.Region) {
		responses.SendError(c, http.StatusBadRequest, "Please select a valid region")
		return
	}

	existing, err := tc.repo.GetOwnedTeamByName(userID, req.Name)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check existing teams")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusBadRequest, "You already have a team with this name")
		return
	}

	team := Team{
		Name:         req.Name,
		Sport:        req.Sport,
		Region:       req.Region,
		Description:  req.Description,
		MaxPlayers:   req.MaxPlayers,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		OwnerID:      userID,
		IsActive:     true,
		Rating:       DefaultRating,
	}

	err = tc.repo.WithTransaction(func(repo TeamRepository) error {
		if err := repo.CreateTeam(&team); err != nil {
			return err
		}
		member := TeamMember{
			TeamID:   team.ID,
			UserID:   userID,
			Role:     RoleCaptain,
			JoinedAt: time.Now(),
		}
		return repo.AddTeamMember(&member)
	})
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetAllTeams godoc
// @Summary Discover teams
// @Description Lists active teams with optional sport/region filters and name/description search, sorted by rating.
// @Tags Teams
// @Produce json
// @Param sport query string false "Sport filter ('all' for no filter)"
// @Param region query string false "Region filter ('all' for no filter)"
// @Param search query string false "Case-insensitive substring search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := map[string]interface{}{}
	if sport := c.Query("sport"); sport != "" && sport != "all" {
		filters["sport"] = sport
	}
	if region := c.Query("region"); region != "" && region != "all" {
		filters["region"] = region
	}
	if search := c.Query("search"); search != "" {
		filters["search"] = search
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.APIResponse{data=Team}
// @Failure 404 {object} responses.APIResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", team)
}

// GetTeamMembers godoc
// @Summary List team members
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.APIResponse{data=[]TeamMember}
// @Failure 404 {object} responses.APIResponse
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	members, err := tc.repo.GetTeamMembers(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", members)
}

// GetTeamStats godoc
// @Summary Get aggregate team statistics
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.APIResponse{data=TeamStats}
// @Failure 404 {object} responses.APIResponse
// @Router /teams/{team_id}/stats [get]
func (tc *TeamController) GetTeamStats(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	stats := TeamStats{
		ID:            team.ID,
		Name:          team.Name,
		Wins:          team.Wins,
		Losses:        team.Losses,
		Draws:         team.Draws,
		Rating:        team.Rating,
		MatchesPlayed: team.MatchesPlayed,
	}
	if team.MatchesPlayed > 0 {
		stats.WinPercentage = int(math.Round(float64(team.Wins) / float64(team.MatchesPlayed) * 100))
	}

	responses.SendSuccess(c, http.StatusOK, "", stats)
}

// GetMyTeams godoc
// @Summary List teams owned by the caller
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.APIResponse{data=[]Team}
// @Security ApiKeyAuth
// @Router /users/me/teams [get]
func (tc *TeamController) GetMyTeams(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	teams, err := tc.repo.GetTeamsByOwnerID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", teams)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Owner-only. Sport and region are fixed at creation.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.APIResponse{data=Team}
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if team.OwnerID != userID {
		responses.SendError(c, http.StatusForbidden, "You can only update teams you own")
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.MaxPlayers != nil {
		team.MaxPlayers = *req.MaxPlayers
	}
	if req.ContactEmail != nil {
		team.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		team.ContactPhone = *req.ContactPhone
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Owner-only soft delete; the team is deactivated, not purged.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.APIResponse
// @Failure 403 {object} responses.APIResponse
// @Failure 404 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if team.OwnerID != userID {
		responses.SendError(c, http.StatusForbidden, "You can only delete teams you own")
		return
	}

	if err := tc.repo.SoftDeleteTeam(uint(teamID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
