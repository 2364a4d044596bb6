package repositories

import (
	"database/sql"

	"github.com/pairlab/pairtinder/internal/models"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{
		db: db,
	}
}

// Upsert creates the tag if it does not exist yet. Tags are label-keyed, so
// re-inserting an existing label is a no-op.
func (r *TagRepository) Upsert(label string) error {
	_, err := r.db.Exec(`INSERT OR IGNORE INTO tags (label) VALUES (?)`, label)
	return err
}

// AttachToProject links a tag to a project
func (r *TagRepository) AttachToProject(projectTag *models.ProjectTag) error {
	query := `
		INSERT INTO project_tags (id, project_id, tag_label)
		VALUES (?, ?, ?)
	`

	_, err := r.db.Exec(query,
		projectTag.ID.String(),
		projectTag.ProjectID.String(),
		projectTag.TagLabel,
	)
	return translateErr(err)
}

// GetLabelsByProjectID retrieves all tag labels attached to a project
func (r *TagRepository) GetLabelsByProjectID(projectID string) ([]string, error) {
	query := `SELECT tag_label FROM project_tags WHERE project_id = ? ORDER BY tag_label`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

// CountByProjectID returns how many tags a project carries
func (r *TagRepository) CountByProjectID(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM project_tags WHERE project_id = ?`, projectID).Scan(&count)
	return count, err
}
