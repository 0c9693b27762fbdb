package repositories

import (
	"gorm.io/gorm"

	"bytestudio_backend/internal/models"
)

type TeamRepository interface {
	List(db *gorm.DB) ([]models.TeamMember, error)
}

type teamRepository struct{}

func NewTeamRepository() TeamRepository { return &teamRepository{} }

func (r *teamRepository) List(db *gorm.DB) ([]models.TeamMember, error) {
	members := []models.TeamMember{}
	if err := db.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
