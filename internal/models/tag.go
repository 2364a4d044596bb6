package models

import (
	"strings"

	"github.com/google/uuid"
)

// Tag is identified by its label, there is no surrogate id
type Tag struct {
	Label string `json:"label"`
}

// ProjectTag links one project to one tag label
type ProjectTag struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	TagLabel  string    `json:"tag_label"`
}

// NewProjectTag creates a new ProjectTag with a generated UUID
func NewProjectTag(projectID uuid.UUID, label string) *ProjectTag {
	return &ProjectTag{
		ID:        uuid.New(),
		ProjectID: projectID,
		TagLabel:  strings.TrimSpace(label),
	}
}

func (pt *ProjectTag) Validate() error {
	if pt.TagLabel == "" {
		return &ValidationError{Field: "label", Message: "Tag label is required"}
	}
	if pt.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Message: "Project ID is required"}
	}
	return nil
}
