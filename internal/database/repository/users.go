package repository

import (
	"context"
	"database/sql"
	"strings"
)

// UserRepo handles users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO users(id, email, password_hash, created_at, updated_at)
	VALUES(?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(email) DO UPDATE SET password_hash=excluded.password_hash, updated_at=CURRENT_TIMESTAMP;
	`, u.ID, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash)
	return err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (r *UserRepo) ByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
