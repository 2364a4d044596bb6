package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/repositories"
)

type MatchService struct {
	matchRepo   *repositories.MatchPreferenceRepository
	userRepo    *repositories.UserRepository
	projectRepo *repositories.ProjectRepository
}

func NewMatchService(matchRepo *repositories.MatchPreferenceRepository, userRepo *repositories.UserRepository,
	projectRepo *repositories.ProjectRepository) *MatchService {
	return &MatchService{
		matchRepo:   matchRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// CreateMatchPreference records a user's decision on a project. Both sides
// are checked explicitly so dangling references surface as NotFound; a second
// preference for the same (user, project) pair is a Conflict.
func (s *MatchService) CreateMatchPreference(userID, projectID string, status models.MatchStatus) (*models.MatchPreference, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return nil, &models.ValidationError{Field: "user_id", Message: "Invalid user ID format"}
	}
	project, err := uuid.Parse(projectID)
	if err != nil {
		return nil, &models.ValidationError{Field: "project_id", Message: "Invalid project ID format"}
	}

	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("match user: %w", models.ErrNotFound)
	}
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		return nil, err
	}

	pref := models.NewMatchPreference(user, project, status)
	if err := pref.Validate(); err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(pref); err != nil {
		return nil, err
	}
	return pref, nil
}

// ListByUser retrieves all preferences recorded by a user
func (s *MatchService) ListByUser(userID string) ([]*models.MatchPreference, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, &models.ValidationError{Field: "user_id", Message: "Invalid user ID format"}
	}

	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("match user: %w", models.ErrNotFound)
	}

	return s.matchRepo.GetByUserID(userID)
}
