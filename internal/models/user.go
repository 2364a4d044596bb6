package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	// Projects owned by this user, populated on single-user reads
	Projects []*Project `json:"projects,omitempty"`
}

// NewUser creates a new User with a generated UUID
func NewUser(name, email string) *User {
	return &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}
}

func (u *User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Message: "User name is required"}
	}
	if u.Email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if !strings.Contains(u.Email, "@") {
		return &ValidationError{Field: "email", Message: "Email is not valid"}
	}
	return nil
}
