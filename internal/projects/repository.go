package projects

import (
	"context"
	"database/sql"
	"errors"
)

// Repository is the single-record atomic contract for project storage.
type Repository interface {
	FindByID(ctx context.Context, id string) (Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p Project) error
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepo persists projects in the projects table.
//
// Expected schema:
//   projects(id text pk, name text, description text, status text,
//            tags jsonb, technologies jsonb, tech_stack jsonb,
//            languages jsonb, group_members jsonb, duration text,
//            type text, category text, owner_id text,
//            document_url text, document_name text,
//            created_at timestamptz, updated_at timestamptz)
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const projectColumns = `
id, name, description, status, tags, technologies, tech_stack, languages,
group_members, duration, type, category, owner_id, document_url,
document_name, created_at, updated_at
`

func (r *PostgresRepo) FindByID(ctx context.Context, id string) (Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p Project
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.Tags,
		&p.Technologies,
		&p.TechStack,
		&p.Languages,
		&p.GroupMembers,
		&p.Duration,
		&p.Type,
		&p.Category,
		&p.OwnerID,
		&p.DocumentURL,
		&p.DocumentName,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, q, ownerID)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	return r.queryList(ctx, q)
}

func (r *PostgresRepo) queryList(ctx context.Context, q string, args ...any) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Status,
			&p.Tags,
			&p.Technologies,
			&p.TechStack,
			&p.Languages,
			&p.GroupMembers,
			&p.Duration,
			&p.Type,
			&p.Category,
			&p.OwnerID,
			&p.DocumentURL,
			&p.DocumentName,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, p Project) error {
	const q = `
INSERT INTO projects (` + projectColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
`
	_, err := r.db.ExecContext(ctx, q,
		p.ID,
		p.Name,
		p.Description,
		p.Status,
		p.Tags,
		p.Technologies,
		p.TechStack,
		p.Languages,
		p.GroupMembers,
		p.Duration,
		p.Type,
		p.Category,
		p.OwnerID,
		p.DocumentURL,
		p.DocumentName,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PostgresRepo) Update(ctx context.Context, p Project) error {
	const q = `
UPDATE projects SET
  name = $2, description = $3, status = $4, tags = $5, technologies = $6,
  tech_stack = $7, languages = $8, group_members = $9, duration = $10,
  type = $11, category = $12, document_url = $13, document_name = $14,
  updated_at = $15
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		p.ID,
		p.Name,
		p.Description,
		p.Status,
		p.Tags,
		p.Technologies,
		p.TechStack,
		p.Languages,
		p.GroupMembers,
		p.Duration,
		p.Type,
		p.Category,
		p.DocumentURL,
		p.DocumentName,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
