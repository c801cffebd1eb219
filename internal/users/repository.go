package users

import (
	"context"
	"database/sql"
	"errors"
)

// Repository is the single-record atomic contract the services and the
// credential authenticator rely on. No method spans multiple records.
type Repository interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
}

// PostgresRepo persists users in the users table.
//
// Expected schema:
//   users(id text pk, username text unique, email text unique,
//         password_hash text, name text, title text, course text,
//         specialization text, graduation_year text,
//         frontend_technologies text, backend_technologies text,
//         database_technologies text, devops_tools text,
//         programming_languages jsonb, skills jsonb, roles jsonb,
//         created_at timestamptz, updated_at timestamptz)
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const userColumns = `
id, username, email, password_hash, name, title, course, specialization,
graduation_year, frontend_technologies, backend_technologies,
database_technologies, devops_tools, programming_languages, skills, roles,
created_at, updated_at
`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Title,
		&u.Course,
		&u.Specialization,
		&u.GraduationYear,
		&u.FrontendTechnologies,
		&u.BackendTechnologies,
		&u.DatabaseTechnologies,
		&u.DevopsTools,
		&u.ProgrammingLanguages,
		&u.Skills,
		&u.Roles,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id string) (User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *PostgresRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

func (r *PostgresRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *PostgresRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepo) Create(ctx context.Context, u User) error {
	const q = `
INSERT INTO users (` + userColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
`
	_, err := r.db.ExecContext(ctx, q,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Title,
		u.Course,
		u.Specialization,
		u.GraduationYear,
		u.FrontendTechnologies,
		u.BackendTechnologies,
		u.DatabaseTechnologies,
		u.DevopsTools,
		u.ProgrammingLanguages,
		u.Skills,
		u.Roles,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *PostgresRepo) Update(ctx context.Context, u User) error {
	const q = `
UPDATE users SET
  email = $2, password_hash = $3, name = $4, title = $5, course = $6,
  specialization = $7, graduation_year = $8, frontend_technologies = $9,
  backend_technologies = $10, database_technologies = $11,
  devops_tools = $12, programming_languages = $13, skills = $14,
  roles = $15, updated_at = $16
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Title,
		u.Course,
		u.Specialization,
		u.GraduationYear,
		u.FrontendTechnologies,
		u.BackendTechnologies,
		u.DatabaseTechnologies,
		u.DevopsTools,
		u.ProgrammingLanguages,
		u.Skills,
		u.Roles,
		u.UpdatedAt,
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
	const q = `DELETE FROM users WHERE id = $1`
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

func (r *PostgresRepo) List(ctx context.Context) ([]User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.Name,
			&u.Title,
			&u.Course,
			&u.Specialization,
			&u.GraduationYear,
			&u.FrontendTechnologies,
			&u.BackendTechnologies,
			&u.DatabaseTechnologies,
			&u.DevopsTools,
			&u.ProgrammingLanguages,
			&u.Skills,
			&u.Roles,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
