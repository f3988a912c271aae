package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetOwnedTeamByName(ownerID uint, name string) (*Team, error)
	// GetActiveTeamByOwnerAndSport returns the first active team the owner has
	// for the given sport, or nil when none exists.
	GetActiveTeamByOwnerAndSport(ownerID uint, sport string) (*Team, error)
	GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error)
	GetTeamsByOwnerID(ownerID uint) ([]Team, error)
	GetActiveTeamIDsByOwnerID(ownerID uint) ([]uint, error)
	UpdateTeam(team *Team) error
	SoftDeleteTeam(id uint) error

	AddTeamMember(member *TeamMember) error
	GetTeamMembers(teamID uint) ([]TeamMember, error)

	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.Preload("Owner").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetOwnedTeamByName(ownerID uint, name string) (*Team, error) {
	var team Team
	if err := r.db.Where("owner_id = ? AND name = ?", ownerID, name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetActiveTeamByOwnerAndSport(ownerID uint, sport string) (*Team, error) {
	var team Team
	err := r.db.Where("owner_id = ? AND sport = ? AND is_active = ?", ownerID, sport, true).
		Order("created_at asc").
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// GetAllTeams is the discovery read path: active teams only, optional sport,
// region and case-insensitive name/description search, ordered by rating then
// recency.
func (r *teamRepository) GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Preload("Owner").Where("is_active = ?", true)

	if sport, ok := filters["sport"]; ok {
		query = query.Where("sport = ?", sport)
	}
	if region, ok := filters["region"]; ok {
		query = query.Where("region = ?", region)
	}
	if search, ok := filters["search"]; ok {
		pattern := "%" + search.(string) + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("rating desc, created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetTeamsByOwnerID(ownerID uint) ([]Team, error) {
	var teams []Team
	err := r.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at desc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetActiveTeamIDsByOwnerID(ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&Team{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

// SoftDeleteTeam deactivates a team instead of purging it so match history
// keeps resolving.
func (r *teamRepository) SoftDeleteTeam(id uint) error {
	return r.db.Model(&Team{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *teamRepository) AddTeamMember(member *TeamMember) error {
	return r.db.Create(member).Error
}

func (r *teamRepository) GetTeamMembers(teamID uint) ([]TeamMember, error) {
	var members []TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Order("created_at asc").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&teamRepository{db: tx})
	})
}
