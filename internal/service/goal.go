package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marjuksajid/SkillChronicle/internal/model"
	"github.com/marjuksajid/SkillChronicle/internal/repository"
	"github.com/marjuksajid/SkillChronicle/internal/validation"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrDetailRequired = errors.New("progress details are required")
	ErrGoalRequired   = errors.New("goal is required")
)

type GoalService struct {
	repo         repository.GoalRepository
	progressRepo repository.ProgressRepository
}

func NewGoalService(repo repository.GoalRepository, progressRepo repository.ProgressRepository) *GoalService {
	return &GoalService{
		repo:         repo,
		progressRepo: progressRepo,
	}
}

func (s *GoalService) Create(userID, title, description string) (*model.Goal, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, ErrTitleRequired
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// RecordProgress stamps the entry with the current time and the session
// user. goalID is stored as submitted; whether it names a real goal, or
// one owned by userID, is not checked.
func (s *GoalService) RecordProgress(userID, goalID, detail string) (*model.Progress, error) {
	if detail == "" {
		return nil, ErrDetailRequired
	}
	if goalID == "" {
		return nil, ErrGoalRequired
	}

	progress := &model.Progress{
		ID:          uuid.New().String(),
		UserID:      userID,
		GoalID:      goalID,
		Description: detail,
		CreatedAt:   time.Now(),
	}

	err := s.progressRepo.Create(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	return progress, nil
}

func (s *GoalService) Progresses(userID string) ([]*model.Progress, error) {
	return s.progressRepo.Progresses(userID)
}
