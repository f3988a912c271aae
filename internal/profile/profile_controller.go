package profile

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/internal/middleware"
	"github.com/matchday-app/matchday/pkg/responses"
	"github.com/matchday-app/matchday/pkg/validator"
)

// ProfileController handles profile HTTP requests.
type ProfileController struct {
	repo ProfileRepository
}

// NewProfileController creates a new profile controller.
func NewProfileController(repo ProfileRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

type UpdateBasicInfoRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	DateOfBirth *string `json:"dateOfBirth"` // ISO-8601 date
	Gender      *string `json:"gender" binding:"omitempty,oneof=male female other"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	Region      *string `json:"region" binding:"omitempty,max=100"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=500"`
}

type UpdateSocialLinksRequest struct {
	InstagramURL *string `json:"instagramUrl" binding:"omitempty,url"`
	TwitterURL   *string `json:"twitterUrl" binding:"omitempty,url"`
	FacebookURL  *string `json:"facebookUrl" binding:"omitempty,url"`
	LinkedinURL  *string `json:"linkedinUrl" binding:"omitempty,url"`
}

type UpdateSportsPreferencesRequest struct {
	FavoriteSports     *string `json:"favoriteSports"`
	PreferredPositions *string `json:"preferredPositions"`
	SkillLevel         *string `json:"skillLevel" binding:"omitempty,oneof=beginner intermediate advanced professional"`
	WeeklyAvailability *string `json:"weeklyAvailability"`
	WillingToJoinTeams *bool   `json:"willingToJoinTeams"`
}

type UpdatePrivacySettingsRequest struct {
	ProfileVisibility  *string `json:"profileVisibility" binding:"omitempty,oneof=public private"`
	EmailVisibility    *bool   `json:"emailVisibility"`
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
}

// GetMyProfile godoc
// @Summary Get the caller's full profile
// @Tags Profile
// @Produce json
// @Success 200 {object} responses.APIResponse{data=user.User}
// @Security ApiKeyAuth
// @Router /profile [get]
func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	u, err := pc.repo.GetUserByID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if u == nil {
		responses.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", u)
}

// GetPublicProfile godoc
// @Summary Get another user's public profile
// @Tags Profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.APIResponse{data=user.PublicProfile}
// @Failure 404 {object} responses.APIResponse
// @Router /profile/{user_id} [get]
func (pc *ProfileController) GetPublicProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	u, err := pc.repo.GetUserByID(uint(userID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if u == nil || !u.IsActive {
		responses.SendError(c, http.StatusNotFound, "User not found")
		return
	}
	if u.ProfileVisibility == "private" {
		responses.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", u.Public())
}

// UpdateBasicInfo godoc
// @Summary Update basic profile information
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body UpdateBasicInfoRequest true "Fields to update"
// @Success 200 {object} responses.APIResponse{data=user.User}
// @Failure 400 {object} responses.APIResponse
// @Security ApiKeyAuth
// @Router /profile [put]
func (pc *ProfileController) UpdateBasicInfo(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdateBasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Please provide a valid date in YYYY-MM-DD format")
			return
		}
		fields["date_of_birth"] = dob
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Region != nil {
		fields["region"] = *req.Region
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	pc.applyUpdate(c, userID, fields)
}

// UpdateSocialLinks godoc
// @Summary Update social media links
// @Tags Profile
// @Accept json
// @Produce json
// @Param links body UpdateSocialLinksRequest true "Links to update"
// @Success 200 {object} responses.APIResponse{data=user.User}
// @Security ApiKeyAuth
// @Router /profile/social [put]
func (pc *ProfileController) UpdateSocialLinks(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdateSocialLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	fields := map[string]interface{}{}
	if req.InstagramURL != nil {
		fields["instagram_url"] = *req.InstagramURL
	}
	if req.TwitterURL != nil {
		fields["twitter_url"] = *req.TwitterURL
	}
	if req.FacebookURL != nil {
		fields["facebook_url"] = *req.FacebookURL
	}
	if req.LinkedinURL != nil {
		fields["linkedin_url"] = *req.LinkedinURL
	}

	pc.applyUpdate(c, userID, fields)
}

// UpdateSportsPreferences godoc
// @Summary Update sports preferences and availability
// @Tags Profile
// @Accept json
// @Produce json
// @Param preferences body UpdateSportsPreferencesRequest true "Preferences to update"
// @Success 200 {object} responses.APIResponse{data=user.User}
// @Security ApiKeyAuth
// @Router /profile/preferences [put]
func (pc *ProfileController) UpdateSportsPreferences(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdateSportsPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	fields := map[string]interface{}{}
	if req.FavoriteSports != nil {
		fields["favorite_sports"] = *req.FavoriteSports
	}
	if req.PreferredPositions != nil {
		fields["preferred_positions"] = *req.PreferredPositions
	}
	if req.SkillLevel != nil {
		fields["skill_level"] = *req.SkillLevel
	}
	if req.WeeklyAvailability != nil {
		fields["weekly_availability"] = *req.WeeklyAvailability
	}
	if req.WillingToJoinTeams != nil {
		fields["willing_to_join_teams"] = *req.WillingToJoinTeams
	}

	pc.applyUpdate(c, userID, fields)
}

// UpdatePrivacySettings godoc
// @Summary Update privacy and notification settings
// @Tags Profile
// @Accept json
// @Produce json
// @Param settings body UpdatePrivacySettingsRequest true "Settings to update"
// @Success 200 {object} responses.APIResponse{data=user.User}
// @Security ApiKeyAuth
// @Router /profile/privacy [put]
func (pc *ProfileController) UpdatePrivacySettings(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdatePrivacySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseErrors(err))
		return
	}

	fields := map[string]interface{}{}
	if req.ProfileVisibility != nil {
		fields["profile_visibility"] = *req.ProfileVisibility
	}
	if req.EmailVisibility != nil {
		fields["email_visibility"] = *req.EmailVisibility
	}
	if req.EmailNotifications != nil {
		fields["email_notifications"] = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		fields["push_notifications"] = *req.PushNotifications
	}

	pc.applyUpdate(c, userID, fields)
}

// applyUpdate persists the given fields and responds with the refreshed profile.
// It writes both success and error responses itself.
func (pc *ProfileController) applyUpdate(c *gin.Context, userID uint, fields map[string]interface{}) {
	if len(fields) == 0 {
		responses.SendError(c, http.StatusBadRequest, "No fields provided to update")
		return
	}

	if err := pc.repo.UpdateFields(userID, fields); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	u, err := pc.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch updated profile")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully", u)
}
