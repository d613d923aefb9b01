package repository

import (
	"context"
	"database/sql"
	"time"
)

// WorkoutLogRepo records completed workouts.
type WorkoutLogRepo struct {
	db *sql.DB
}

func NewWorkoutLogRepo(db *sql.DB) *WorkoutLogRepo { return &WorkoutLogRepo{db: db} }

func (r *WorkoutLogRepo) Insert(ctx context.Context, e LogEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO workout_log(id, user_id, workout_id, completed_at)
	VALUES(?, ?, ?, ?)`, e.ID, e.UserID, e.WorkoutID, e.CompletedAt.UTC())
	return err
}

// CompletedSince lists entries at or after the cutoff, oldest first.
func (r *WorkoutLogRepo) CompletedSince(ctx context.Context, userID string, cutoff time.Time) ([]LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, user_id, workout_id, completed_at
	FROM workout_log WHERE user_id = ? AND completed_at >= ?
	ORDER BY completed_at`, userID, cutoff.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WorkoutID, &e.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DoneToday reports whether the workout was completed on the given day.
func (r *WorkoutLogRepo) DoneToday(ctx context.Context, userID, workoutID string, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	row := r.db.QueryRowContext(ctx, `
	SELECT COUNT(1) FROM workout_log
	WHERE user_id = ? AND workout_id = ? AND completed_at >= ? AND completed_at < ?`,
		userID, workoutID, start, end)
	var n int
	if err := row.Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
