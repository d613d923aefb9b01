package repository

import (
	"context"
	"database/sql"
)

// ChatRepo persists the coach conversation.
type ChatRepo struct {
	db *sql.DB
}

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{db: db} }

func (r *ChatRepo) Append(ctx context.Context, m ChatMessage) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO chat_messages(id, user_id, role, body, created_at)
	VALUES(?, ?, ?, ?, ?)`, m.ID, m.UserID, m.Role, m.Body, m.CreatedAt.UTC())
	return err
}

// History returns the most recent messages in chronological order.
func (r *ChatRepo) History(ctx context.Context, userID string, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, user_id, role, body, created_at FROM (
	 SELECT id, user_id, role, body, created_at
	 FROM chat_messages WHERE user_id = ?
	 ORDER BY created_at DESC, id DESC LIMIT ?
	) ORDER BY created_at, id`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
