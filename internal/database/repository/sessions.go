package repository

import (
	"context"
	"database/sql"
)

// SessionRepo handles persisted login sessions. One active session per
// install is the norm; Latest returns the newest.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Save(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, user_id, token, created_at, expires_at)
	VALUES(?, ?, ?, CURRENT_TIMESTAMP, ?)
	ON CONFLICT(id) DO UPDATE SET token=excluded.token, expires_at=excluded.expires_at;
	`, s.ID, s.UserID, s.Token, s.ExpiresAt)
	return err
}

func (r *SessionRepo) Latest(ctx context.Context) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, user_id, token, created_at, expires_at
	FROM sessions ORDER BY created_at DESC, id DESC LIMIT 1`)
	var s Session
	if err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
