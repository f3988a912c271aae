package notification

import "gorm.io/gorm"

// NotificationType enumerates the lifecycle events a user can be notified about.
type NotificationType string

const (
	TypeChallengeReceived NotificationType = "CHALLENGE_RECEIVED"
	TypeChallengeAccepted NotificationType = "CHALLENGE_ACCEPTED"
	TypeChallengeDeclined NotificationType = "CHALLENGE_DECLINED"
	TypeMatchScheduled    NotificationType = "MATCH_SCHEDULED"
	TypeMatchCompleted    NotificationType = "MATCH_COMPLETED"
	TypeTeamInvitation    NotificationType = "TEAM_INVITATION"
	TypeRatingUpdate      NotificationType = "RATING_UPDATE"
)

// Notification is a persisted message for a single recipient, created as a
// side effect of challenge/match transitions.
type Notification struct {
	gorm.Model
	UserID  uint             `json:"user_id" gorm:"index;not null"`
	Type    NotificationType `json:"type" gorm:"index;not null"`
	Title   string           `json:"title" gorm:"not null"`
	Message string           `json:"message" gorm:"type:text"`
	IsRead  bool             `json:"is_read" gorm:"default:false;index"`
	Data    string           `json:"data,omitempty" gorm:"type:text"`
}

// Notifier is the delivery sink consumed by the challenge and match
// components. Implementations must treat delivery as best-effort; callers
// log and swallow any error so a failed notification never rolls back the
// write that triggered it.
type Notifier interface {
	Notify(userID uint, notifType NotificationType, title, message string) error
}
