package notification

import (
	"errors"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Notifier
	GetByUser(userID uint, unreadOnly bool, page, limit int) ([]Notification, int64, error)
	CountUnread(userID uint) (int64, error)
	GetByIDForUser(id, userID uint) (*Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	Delete(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Notify persists a notification for the recipient.
func (r *notificationRepository) Notify(userID uint, notifType NotificationType, title, message string) error {
	n := Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	return r.db.Create(&n).Error
}

func (r *notificationRepository) GetByUser(userID uint, unreadOnly bool, page, limit int) ([]Notification, int64, error) {
	var notifications []Notification
	var total int64

	query := r.db.Model(&Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *notificationRepository) GetByIDForUser(id, userID uint) (*Notification, error) {
	var n Notification
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) MarkRead(id uint) error {
	return r.db.Model(&Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Update("is_read", true).Error
}

func (r *notificationRepository) Delete(id uint) error {
	return r.db.Delete(&Notification{}, id).Error
}
