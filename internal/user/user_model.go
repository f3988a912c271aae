package user

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered player/organizer account.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone,omitempty"`
	Region   string `json:"region" gorm:"index"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Extended profile
	Bio         string     `json:"bio,omitempty" gorm:"type:text"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`

	// Social links
	InstagramURL string `json:"instagram_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`

	// Sports preferences
	FavoriteSports     string `json:"favorite_sports,omitempty" gorm:"type:text"`
	PreferredPositions string `json:"preferred_positions,omitempty" gorm:"type:text"`
	SkillLevel         string `json:"skill_level,omitempty"`
	WeeklyAvailability string `json:"weekly_availability,omitempty" gorm:"type:text"`
	WillingToJoinTeams bool   `json:"willing_to_join_teams" gorm:"default:true"`

	// Privacy settings
	ProfileVisibility  string `json:"profile_visibility" gorm:"default:'public'"`
	EmailVisibility    bool   `json:"email_visibility" gorm:"default:false"`
	EmailNotifications bool   `json:"email_notifications" gorm:"default:true"`
	PushNotifications  bool   `json:"push_notifications" gorm:"default:true"`
}

// PublicProfile is the restricted field set other users may see.
type PublicProfile struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

// Public projects the user onto its public profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Region:    u.Region,
		CreatedAt: u.CreatedAt,
	}
}
