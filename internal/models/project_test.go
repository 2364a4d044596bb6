package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewProject(t *testing.T) {
	owner := uuid.New()

	t.Run("Expiry is exactly fourteen days after creation", func(t *testing.T) {
		project := NewProject("Compiler", "a toy compiler", owner)

		assert.Equal(t, ProjectTTL, project.ExpiresOn.Sub(project.CreatedAt))
		assert.Equal(t, 14*24*time.Hour, project.ExpiresOn.Sub(project.CreatedAt))
	})

	t.Run("Generates an ID and trims the name", func(t *testing.T) {
		project := NewProject("  Compiler  ", "desc", owner)

		assert.NotEqual(t, uuid.Nil, project.ID)
		assert.Equal(t, "Compiler", project.Name)
		assert.Equal(t, owner, project.OwnerID)
	})
}

func TestProjectValidate(t *testing.T) {
	owner := uuid.New()

	testCases := []struct {
		name    string
		project *Project
		field   string
	}{
		{
			name:    "Missing name",
			project: NewProject("", "desc", owner),
			field:   "name",
		},
		{
			name:    "Whitespace name",
			project: NewProject("   ", "desc", owner),
			field:   "name",
		},
		{
			name:    "Missing owner",
			project: NewProject("Compiler", "desc", uuid.Nil),
			field:   "owner_id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.project.Validate()
			assert.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	t.Run("Valid project", func(t *testing.T) {
		assert.NoError(t, NewProject("Compiler", "desc", owner).Validate())
	})
}

func TestProjectIsExpired(t *testing.T) {
	project := NewProject("Compiler", "desc", uuid.New())

	assert.False(t, project.IsExpired(project.CreatedAt))
	assert.False(t, project.IsExpired(project.ExpiresOn))
	assert.True(t, project.IsExpired(project.ExpiresOn.Add(time.Second)))
}
