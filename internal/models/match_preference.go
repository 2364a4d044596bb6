package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchStatus represents a user's decision on a project
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// ParseMatchStatus converts a string into a MatchStatus. The empty string
// defaults to pending.
func ParseMatchStatus(s string) (MatchStatus, error) {
	switch MatchStatus(s) {
	case "":
		return MatchStatusPending, nil
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return MatchStatus(s), nil
	}
	return "", &ValidationError{Field: "matched", Message: fmt.Sprintf("Unknown match status %q", s)}
}

// UnmarshalJSON accepts both the status strings and the legacy integer
// encoding (0 = pending, 1 = accepted, 2 = rejected) used by older clients.
func (s *MatchStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := ParseMatchStatus(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 0:
			*s = MatchStatusPending
		case 1:
			*s = MatchStatusAccepted
		case 2:
			*s = MatchStatusRejected
		default:
			return &ValidationError{Field: "matched", Message: fmt.Sprintf("Unknown match status %d", n)}
		}
		return nil
	}

	return &ValidationError{Field: "matched", Message: "Match status must be a string or integer"}
}

// MatchPreference records one user's expressed interest in one project.
// At most one row exists per (user, project) pair.
type MatchPreference struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	ProjectID uuid.UUID   `json:"project_id"`
	Matched   MatchStatus `json:"matched"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewMatchPreference creates a new MatchPreference with a generated UUID
func NewMatchPreference(userID, projectID uuid.UUID, status MatchStatus) *MatchPreference {
	if status == "" {
		status = MatchStatusPending
	}
	return &MatchPreference{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		Matched:   status,
		CreatedAt: time.Now().UTC(),
	}
}

func (m *MatchPreference) Validate() error {
	if m.UserID == uuid.Nil {
		return &ValidationError{Field: "user_id", Message: "User ID is required"}
	}
	if m.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Message: "Project ID is required"}
	}
	switch m.Matched {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return nil
	}
	return &ValidationError{Field: "matched", Message: fmt.Sprintf("Unknown match status %q", m.Matched)}
}
