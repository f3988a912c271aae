package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matchday-app/matchday/internal/user"
)

// ProfileRepository defines data access for user profiles.
type ProfileRepository interface {
	GetUserByID(id uint) (*user.User, error)
	UpdateUser(u *user.User) error
	UpdateFields(id uint, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *profileRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *profileRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&user.User{}).Where("id = ?", id).Updates(fields).Error
}
