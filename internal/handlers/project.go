package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/services"
	"github.com/pairlab/pairtinder/pkg/logger"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	exportService  *services.ExportService
}

func NewProjectHandler(projectService *services.ProjectService, exportService *services.ExportService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		exportService:  exportService,
	}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

// CreateProject handles project creation
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &models.ValidationError{Field: "body", Message: "Invalid request body"})
		return
	}

	project, err := h.projectService.CreateProject(req.Name, req.Description, req.OwnerID)
	if err != nil {
		if err == models.ErrConflict {
			err = fmt.Errorf("project name already taken: %w", models.ErrConflict)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject returns a project together with its tags
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects returns a page of projects. Supported query parameters:
// offset, limit, exclude_matched_for, active, tag.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		respondError(c, err)
		return
	}

	projects, err := h.projectService.ListProjects(services.ListProjectsParams{
		Offset:            offset,
		Limit:             limit,
		ExcludeMatchedFor: c.Query("exclude_matched_for"),
		ActiveOnly:        c.Query("active") == "true",
		Tag:               c.Query("tag"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// DeleteProject deletes a project and its dependent rows
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Param("project_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type addTagRequest struct {
	Label string `json:"label"`
}

// AddProjectTag attaches a tag to a project
func (h *ProjectHandler) AddProjectTag(c *gin.Context) {
	var req addTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &models.ValidationError{Field: "body", Message: "Invalid request body"})
		return
	}

	projectTag, err := h.projectService.AddProjectTag(c.Param("project_id"), req.Label)
	if err != nil {
		if err == models.ErrConflict {
			err = fmt.Errorf("tag already attached: %w", models.ErrConflict)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, projectTag)
}

// ExportProjects streams the project board as a spreadsheet
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	f, err := h.exportService.ExportProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("projects-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.WithError(err).Error("failed to write export")
	}
}

func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: key, Message: fmt.Sprintf("%s must be an integer", key)}
	}
	return value, nil
}
