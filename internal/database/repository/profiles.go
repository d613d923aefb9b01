package repository

import (
	"context"
	"database/sql"
)

// ProfileRepo handles profiles.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Upsert(ctx context.Context, p Profile) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO profiles(user_id, full_name, goal, fitness_level, weekly_target, onboarding_complete, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(user_id) DO UPDATE SET
	 full_name=excluded.full_name,
	 goal=excluded.goal,
	 fitness_level=excluded.fitness_level,
	 weekly_target=excluded.weekly_target,
	 onboarding_complete=excluded.onboarding_complete,
	 updated_at=CURRENT_TIMESTAMP;
	`, p.UserID, p.FullName, p.Goal, p.FitnessLevel, p.WeeklyTarget, p.OnboardingComplete)
	return err
}

func (r *ProfileRepo) ByUserID(ctx context.Context, userID string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT user_id, full_name, goal, fitness_level, weekly_target, onboarding_complete, created_at, updated_at
	FROM profiles WHERE user_id = ?`, userID)
	var p Profile
	if err := row.Scan(&p.UserID, &p.FullName, &p.Goal, &p.FitnessLevel, &p.WeeklyTarget, &p.OnboardingComplete, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
