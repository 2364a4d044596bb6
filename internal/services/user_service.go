package services

import (
	"github.com/google/uuid"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/repositories"
)

type UserService struct {
	userRepo    *repositories.UserRepository
	projectRepo *repositories.ProjectRepository
}

func NewUserService(userRepo *repositories.UserRepository, projectRepo *repositories.ProjectRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// CreateUser registers a new user. The email must not be in use yet.
func (s *UserService) CreateUser(name, email string) (*models.User, error) {
	user := models.NewUser(name, email)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID together with the projects they own
func (s *UserService) GetUser(id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &models.ValidationError{Field: "user_id", Message: "Invalid user ID format"}
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetByOwnerID(id)
	if err != nil {
		return nil, err
	}
	user.Projects = projects

	return user, nil
}
