package services

import (
	"gorm.io/gorm"

	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/pkg/apperrors"
)

type TeamService interface {
	List(db *gorm.DB) ([]models.TeamMember, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) List(db *gorm.DB) ([]models.TeamMember, error) {
	members, err := s.teamRepo.List(db)
	if err != nil {
		return nil, apperrors.NewInternal("team", "Failed to load the team.", err)
	}
	return members, nil
}
