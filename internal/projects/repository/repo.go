package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/projhub/projhub-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// EnsureSchema creates the projects table when it does not exist yet.
// Callers treat failures as non-fatal: the hosted store usually has the
// table provisioned already and the connection role may lack DDL rights.
func (r *ProjectRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS projects (
    id serial PRIMARY KEY,
    project_name text NOT NULL,
    description text NOT NULL,
    date_added timestamp DEFAULT now()
);
`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

// Create inserts a new project row. The store assigns id and date_added.
func (r *ProjectRepository) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	const q = `
INSERT INTO projects (project_name, description)
VALUES ($1, $2)
RETURNING id, project_name, description, date_added;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, name, description).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update rewrites name and description of the row matching id. The id and
// date_added columns never change.
func (r *ProjectRepository) Update(ctx context.Context, id int64, name, description string) (*domain.Project, error) {
	const q = `
UPDATE projects
SET project_name = $2, description = $3
WHERE id = $1
RETURNING id, project_name, description, date_added;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id, name, description).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the row matching id and reports whether a row went away.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// List returns all projects ordered by creation time, most recent first.
// A non-empty keyword narrows the result to rows whose name or description
// contains it, case-insensitively.
func (r *ProjectRepository) List(ctx context.Context, keyword string) ([]domain.Project, error) {
	const base = `
SELECT id, project_name, description, date_added
FROM projects
`
	const order = `ORDER BY date_added DESC, id DESC;`

	var (
		rows *sql.Rows
		err  error
	)
	if keyword == "" {
		rows, err = r.db.QueryContext(ctx, base+order)
	} else {
		pattern := "%" + escapeLike(keyword) + "%"
		rows, err = r.db.QueryContext(ctx,
			base+`WHERE project_name ILIKE $1 OR description ILIKE $1
`+order, pattern)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// escapeLike neutralizes LIKE metacharacters so a keyword such as "100%"
// matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
