package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marjuksajid/SkillChronicle/internal/model"
	"github.com/marjuksajid/SkillChronicle/internal/repository"
	"github.com/marjuksajid/SkillChronicle/internal/validation"
)

type SkillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) *SkillService {
	return &SkillService{
		repo: repo,
	}
}

func (s *SkillService) Create(userID, name, description string) (*model.Skill, error) {
	err := validation.ValidateTitle(name)
	if err != nil {
		return nil, ErrTitleRequired
	}

	skill := &model.Skill{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(skill)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

func (s *SkillService) Skills(userID string) ([]*model.Skill, error) {
	return s.repo.Skills(userID)
}
