package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pairlab/pairtinder/internal/models"
)

// ProjectFilter narrows and pages a project listing. Zero values mean no
// filtering; Limit must be set by the caller.
type ProjectFilter struct {
	// ExcludeMatchedFor hides projects this user already has a preference for
	ExcludeMatchedFor string
	// ActiveOnly hides projects past their expiry
	ActiveOnly bool
	// Tag keeps only projects carrying this tag label
	Tag    string
	Offset int
	Limit  int
}

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (id, name, description, owner_id, created_at, expires_on)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		project.ID.String(),
		project.Name,
		project.Description,
		project.OwnerID.String(),
		project.CreatedAt,
		project.ExpiresOn,
	)
	return translateErr(err)
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `SELECT id, name, description, owner_id, created_at, expires_on FROM projects WHERE id = ?`

	project, err := r.scanProject(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetByOwnerID retrieves all projects for an owner, newest last
func (r *ProjectRepository) GetByOwnerID(ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, name, description, owner_id, created_at, expires_on
		FROM projects
		WHERE owner_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectProjects(rows)
}

// All retrieves every project, oldest first. Used by the export report.
func (r *ProjectRepository) All() ([]*models.Project, error) {
	query := `
		SELECT id, name, description, owner_id, created_at, expires_on
		FROM projects
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectProjects(rows)
}

// List returns a page of projects ordered by creation time then ID, so the
// listing is deterministic across requests.
func (r *ProjectRepository) List(filter ProjectFilter) ([]*models.Project, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.id, p.name, p.description, p.owner_id, p.created_at, p.expires_on FROM projects p`)

	var conds []string
	var args []interface{}

	if filter.ExcludeMatchedFor != "" {
		conds = append(conds, `NOT EXISTS (SELECT 1 FROM match_preferences mp WHERE mp.project_id = p.id AND mp.user_id = ?)`)
		args = append(args, filter.ExcludeMatchedFor)
	}
	if filter.ActiveOnly {
		conds = append(conds, `p.expires_on > ?`)
		args = append(args, time.Now().UTC())
	}
	if filter.Tag != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM project_tags pt WHERE pt.project_id = p.id AND pt.tag_label = ?)`)
		args = append(args, filter.Tag)
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	sb.WriteString(` ORDER BY p.created_at, p.id LIMIT ? OFFSET ?`)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectProjects(rows)
}

// Delete deletes a project. Dependent project_tags and match_preferences
// rows go with it via ON DELETE CASCADE.
func (r *ProjectRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ProjectRepository) scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var projectID, ownerID string
	err := row.Scan(
		&projectID,
		&project.Name,
		&project.Description,
		&ownerID,
		&project.CreatedAt,
		&project.ExpiresOn,
	)
	if err != nil {
		return nil, err
	}

	if project.ID, err = uuid.Parse(projectID); err != nil {
		return nil, err
	}
	if project.OwnerID, err = uuid.Parse(ownerID); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) collectProjects(rows *sql.Rows) ([]*models.Project, error) {
	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}
