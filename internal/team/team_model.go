package team

import (
	"time"

	"gorm.io/gorm"

	"github.com/matchday-app/matchday/internal/user"
)

// Sports and regions accepted by team and challenge endpoints.
var (
	Sports = []string{
		"Football", "Basketball", "Cricket", "Volleyball", "Tennis",
		"Badminton", "Table Tennis", "Hockey", "Baseball", "Rugby",
	}
	Regions = []string{
		"North America", "South America", "Europe", "Asia", "Africa", "Oceania",
	}
)

const DefaultRating = 1000

// Team represents a sports team owned by a single user.
// wins + losses + draws == matches_played holds after every completed match;
// the counters are mutated only inside the match-recording transaction.
type Team struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null;index"`
	Sport        string     `json:"sport" gorm:"not null;index"`
	Region       string     `json:"region" gorm:"not null;index"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	MaxPlayers   int        `json:"max_players"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	OwnerID      uint       `json:"owner_id" gorm:"index;not null"`
	Owner        *user.User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`

	Wins          int `json:"wins" gorm:"default:0"`
	Losses        int `json:"losses" gorm:"default:0"`
	Draws         int `json:"draws" gorm:"default:0"`
	Rating        int `json:"rating" gorm:"default:1000"`
	MatchesPlayed int `json:"matches_played" gorm:"default:0"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TeamMember links a user to a team. The owner is added as captain on creation.
type TeamMember struct {
	gorm.Model
	TeamID   uint       `json:"team_id" gorm:"index;not null;uniqueIndex:idx_team_user"`
	UserID   uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_team_user"`
	User     *user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role     string     `json:"role" gorm:"default:'player'"`
	JoinedAt time.Time  `json:"joined_at"`
}

// ValidSport reports whether s is one of the supported sports.
func ValidSport(s string) bool {
	for _, sport := range Sports {
		if sport == s {
			return true
		}
	}
	return false
}

// ValidRegion reports whether r is one of the supported regions.
func ValidRegion(r string) bool {
	for _, region := range Regions {
		if region == r {
			return true
		}
	}
	return false
}
