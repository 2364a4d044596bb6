package services

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/pairlab/pairtinder/internal/repositories"
	"github.com/pairlab/pairtinder/pkg/database"
)

type testEnv struct {
	db             *sql.DB
	userService    *UserService
	projectService *ProjectService
	matchService   *MatchService
	exportService  *ExportService
}

// newTestEnv wires the full service stack over an in-memory database built
// from the migration scripts
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	require.NoError(t, database.RunSQLScripts(db, "../../migrations"))
	t.Cleanup(func() { db.Close() })

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	matchRepo := repositories.NewMatchPreferenceRepository(db)

	return &testEnv{
		db:             db,
		userService:    NewUserService(userRepo, projectRepo),
		projectService: NewProjectService(projectRepo, userRepo, tagRepo, 100, 100),
		matchService:   NewMatchService(matchRepo, userRepo, projectRepo),
		exportService:  NewExportService(projectRepo, userRepo, tagRepo, matchRepo),
	}
}
