package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectTTL is how long a project stays open for matching after creation.
// ExpiresOn is stamped once at creation and never recomputed.
const ProjectTTL = 14 * 24 * time.Hour

type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresOn   time.Time `json:"expires_on"`

	// Tag labels attached to this project, populated on single-project reads
	Tags []string `json:"tags,omitempty"`
}

// NewProject creates a new Project with a generated UUID and expiry stamp
func NewProject(name, description string, ownerID uuid.UUID) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		ExpiresOn:   now.Add(ProjectTTL),
	}
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "Project name is required"}
	}
	if p.OwnerID == uuid.Nil {
		return &ValidationError{Field: "owner_id", Message: "Owner ID is required"}
	}
	return nil
}

// IsExpired reports whether the project has passed its matching window
func (p *Project) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresOn)
}
