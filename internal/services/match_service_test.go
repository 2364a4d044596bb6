package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairlab/pairtinder/internal/models"
)

func TestMatchServiceCreateMatchPreference(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userService.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)
	project, err := env.projectService.CreateProject("Compiler", "a toy compiler", user.ID.String())
	require.NoError(t, err)

	t.Run("Records the decision", func(t *testing.T) {
		pref, err := env.matchService.CreateMatchPreference(user.ID.String(), project.ID.String(), models.MatchStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.MatchStatusAccepted, pref.Matched)
		assert.Equal(t, user.ID, pref.UserID)
		assert.Equal(t, project.ID, pref.ProjectID)
	})

	t.Run("Second decision on the same pair is a conflict", func(t *testing.T) {
		_, err := env.matchService.CreateMatchPreference(user.ID.String(), project.ID.String(), models.MatchStatusRejected)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("Unknown user is NotFound", func(t *testing.T) {
		_, err := env.matchService.CreateMatchPreference(uuid.New().String(), project.ID.String(), models.MatchStatusPending)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Unknown project is NotFound", func(t *testing.T) {
		_, err := env.matchService.CreateMatchPreference(user.ID.String(), uuid.New().String(), models.MatchStatusPending)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Malformed IDs are validation errors", func(t *testing.T) {
		var validationErr *models.ValidationError

		_, err := env.matchService.CreateMatchPreference("nope", project.ID.String(), models.MatchStatusPending)
		assert.ErrorAs(t, err, &validationErr)

		_, err = env.matchService.CreateMatchPreference(user.ID.String(), "nope", models.MatchStatusPending)
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestMatchServiceListByUser(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userService.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)
	first, err := env.projectService.CreateProject("Compiler", "", user.ID.String())
	require.NoError(t, err)
	second, err := env.projectService.CreateProject("Linker", "", user.ID.String())
	require.NoError(t, err)

	_, err = env.matchService.CreateMatchPreference(user.ID.String(), first.ID.String(), models.MatchStatusAccepted)
	require.NoError(t, err)
	_, err = env.matchService.CreateMatchPreference(user.ID.String(), second.ID.String(), models.MatchStatusRejected)
	require.NoError(t, err)

	prefs, err := env.matchService.ListByUser(user.ID.String())
	require.NoError(t, err)
	assert.Len(t, prefs, 2)

	t.Run("Unknown user is NotFound", func(t *testing.T) {
		_, err := env.matchService.ListByUser(uuid.New().String())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
