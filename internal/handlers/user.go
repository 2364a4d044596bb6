package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser handles user registration
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &models.ValidationError{Field: "body", Message: "Invalid request body"})
		return
	}

	user, err := h.userService.CreateUser(req.Name, req.Email)
	if err != nil {
		if err == models.ErrConflict {
			err = fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser returns a user together with their owned projects
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
