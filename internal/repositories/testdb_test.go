package repositories

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/pkg/database"
)

// newTestDB builds an in-memory database from the migration scripts. A single
// connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	require.NoError(t, database.RunSQLScripts(db, "../../migrations"))

	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, name, email string) *models.User {
	t.Helper()

	user := models.NewUser(name, email)
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createTestProject(t *testing.T, db *sql.DB, name string, owner *models.User) *models.Project {
	t.Helper()

	project := models.NewProject(name, "test project", owner.ID)
	require.NoError(t, NewProjectRepository(db).Create(project))
	return project
}
