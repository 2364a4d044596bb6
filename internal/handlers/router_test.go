package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/pairlab/pairtinder/internal/repositories"
	"github.com/pairlab/pairtinder/internal/services"
	"github.com/pairlab/pairtinder/pkg/database"
)

// newTestRouter wires the whole stack, handlers down to an in-memory SQLite
// database, mirroring the route table in cmd/server
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	userService := services.NewUserService(userRepo, projectRepo)
	projectService := services.NewProjectService(projectRepo, userRepo, tagRepo, 100, 100)
	matchService := services.NewMatchService(matchRepo, userRepo, projectRepo)
	exportService := services.NewExportService(projectRepo, userRepo, tagRepo, matchRepo)

	userHandler := NewUserHandler(userService)
	projectHandler := NewProjectHandler(projectService, exportService)
	matchHandler := NewMatchHandler(matchService)
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.POST("/users/", userHandler.CreateUser)
	router.GET("/users/:user_id", userHandler.GetUser)
	router.GET("/users/:user_id/matches", matchHandler.ListUserMatches)
	router.POST("/projects/", projectHandler.CreateProject)
	router.GET("/projects/", projectHandler.ListProjects)
	router.GET("/projects/:project_id", projectHandler.GetProject)
	router.DELETE("/projects/:project_id", projectHandler.DeleteProject)
	router.POST("/projects/:project_id/tags", projectHandler.AddProjectTag)
	router.POST("/match/", matchHandler.CreateMatch)
	router.GET("/export/projects", projectHandler.ExportProjects)
	router.GET("/health", healthHandler.HealthCheck)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createUserViaAPI(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/users/", gin.H{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["id"].(string)
}

func createProjectViaAPI(t *testing.T, router *gin.Engine, name, ownerID string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/projects/", gin.H{"name": name, "description": "test", "owner_id": ownerID})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["id"].(string)
}
