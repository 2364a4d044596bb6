package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/repositories"
)

// ListProjectsParams are the caller-facing listing knobs. Limit falls back to
// the configured default and is clamped to the configured maximum.
type ListProjectsParams struct {
	Offset            int
	Limit             int
	ExcludeMatchedFor string
	ActiveOnly        bool
	Tag               string
}

type ProjectService struct {
	projectRepo     *repositories.ProjectRepository
	userRepo        *repositories.UserRepository
	tagRepo         *repositories.TagRepository
	defaultPageSize int
	maxPageSize     int
}

func NewProjectService(projectRepo *repositories.ProjectRepository, userRepo *repositories.UserRepository,
	tagRepo *repositories.TagRepository, defaultPageSize, maxPageSize int) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		userRepo:        userRepo,
		tagRepo:         tagRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateProject creates a new project owned by an existing user. The owner
// check is explicit so a dangling owner_id surfaces as NotFound instead of a
// bare constraint error.
func (s *ProjectService) CreateProject(name, description, ownerID string) (*models.Project, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, &models.ValidationError{Field: "owner_id", Message: "Invalid owner ID format"}
	}

	exists, err := s.userRepo.Exists(ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("project owner: %w", models.ErrNotFound)
	}

	project := models.NewProject(name, description, owner)
	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject retrieves a project by ID together with its tag labels
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &models.ValidationError{Field: "project_id", Message: "Invalid project ID format"}
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetLabelsByProjectID(id)
	if err != nil {
		return nil, err
	}
	project.Tags = tags

	return project, nil
}

// ListProjects returns a page of projects
func (s *ProjectService) ListProjects(params ListProjectsParams) ([]*models.Project, error) {
	if params.Offset < 0 {
		return nil, &models.ValidationError{Field: "offset", Message: "Offset must not be negative"}
	}
	if params.Limit < 0 {
		return nil, &models.ValidationError{Field: "limit", Message: "Limit must not be negative"}
	}
	if params.Limit == 0 {
		params.Limit = s.defaultPageSize
	}
	if params.Limit > s.maxPageSize {
		params.Limit = s.maxPageSize
	}
	if params.ExcludeMatchedFor != "" {
		if _, err := uuid.Parse(params.ExcludeMatchedFor); err != nil {
			return nil, &models.ValidationError{Field: "exclude_matched_for", Message: "Invalid user ID format"}
		}
	}

	return s.projectRepo.List(repositories.ProjectFilter{
		ExcludeMatchedFor: params.ExcludeMatchedFor,
		ActiveOnly:        params.ActiveOnly,
		Tag:               strings.TrimSpace(params.Tag),
		Offset:            params.Offset,
		Limit:             params.Limit,
	})
}

// DeleteProject deletes a project and, through the schema's cascade rules,
// its tag links and match preferences
func (s *ProjectService) DeleteProject(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &models.ValidationError{Field: "project_id", Message: "Invalid project ID format"}
	}

	return s.projectRepo.Delete(id)
}

// AddProjectTag attaches a tag to a project, creating the tag on first use
func (s *ProjectService) AddProjectTag(projectID, label string) (*models.ProjectTag, error) {
	project, err := uuid.Parse(projectID)
	if err != nil {
		return nil, &models.ValidationError{Field: "project_id", Message: "Invalid project ID format"}
	}

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		return nil, err
	}

	projectTag := models.NewProjectTag(project, label)
	if err := projectTag.Validate(); err != nil {
		return nil, err
	}

	if err := s.tagRepo.Upsert(projectTag.TagLabel); err != nil {
		return nil, err
	}
	if err := s.tagRepo.AttachToProject(projectTag); err != nil {
		return nil, err
	}
	return projectTag, nil
}
