package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/services"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

type createMatchRequest struct {
	UserID    string             `json:"user_id"`
	ProjectID string             `json:"project_id"`
	Matched   models.MatchStatus `json:"matched"`
}

// CreateMatch records a user's preference for a project
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A bad "matched" value carries its own message, keep it
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			err = &models.ValidationError{Field: "body", Message: "Invalid request body"}
		}
		respondError(c, err)
		return
	}

	pref, err := h.matchService.CreateMatchPreference(req.UserID, req.ProjectID, req.Matched)
	if err != nil {
		if err == models.ErrConflict {
			err = fmt.Errorf("preference already recorded for this user and project: %w", models.ErrConflict)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pref)
}

// ListUserMatches returns all preferences recorded by a user
func (h *MatchHandler) ListUserMatches(c *gin.Context) {
	prefs, err := h.matchService.ListByUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": prefs})
}
