package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/pairlab/pairtinder/internal/models"
)

type MatchPreferenceRepository struct {
	db *sql.DB
}

func NewMatchPreferenceRepository(db *sql.DB) *MatchPreferenceRepository {
	return &MatchPreferenceRepository{
		db: db,
	}
}

// Create creates a new match preference. The unique constraint on
// (user_id, project_id) keeps the pair to a single row.
func (r *MatchPreferenceRepository) Create(pref *models.MatchPreference) error {
	query := `
		INSERT INTO match_preferences (id, user_id, project_id, matched, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		pref.ID.String(),
		pref.UserID.String(),
		pref.ProjectID.String(),
		string(pref.Matched),
		pref.CreatedAt,
	)
	return translateErr(err)
}

// GetByUserID retrieves all preferences recorded by a user, oldest first
func (r *MatchPreferenceRepository) GetByUserID(userID string) ([]*models.MatchPreference, error) {
	query := `
		SELECT id, user_id, project_id, matched, created_at
		FROM match_preferences
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefs := make([]*models.MatchPreference, 0)
	for rows.Next() {
		pref, err := scanMatchPreference(rows)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// CountByProjectID returns how many preferences reference a project
func (r *MatchPreferenceRepository) CountByProjectID(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM match_preferences WHERE project_id = ?`, projectID).Scan(&count)
	return count, err
}

func scanMatchPreference(rows *sql.Rows) (*models.MatchPreference, error) {
	var pref models.MatchPreference
	var prefID, userID, projectID, matched string
	err := rows.Scan(
		&prefID,
		&userID,
		&projectID,
		&matched,
		&pref.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pref.ID, err = uuid.Parse(prefID); err != nil {
		return nil, err
	}
	if pref.UserID, err = uuid.Parse(userID); err != nil {
		return nil, err
	}
	if pref.ProjectID, err = uuid.Parse(projectID); err != nil {
		return nil, err
	}
	pref.Matched = models.MatchStatus(matched)

	return &pref, nil
}
