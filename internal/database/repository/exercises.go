package repository

import (
	"context"
	"database/sql"
)

// ExerciseRepo handles the exercise library.
type ExerciseRepo struct {
	db *sql.DB
}

func NewExerciseRepo(db *sql.DB) *ExerciseRepo { return &ExerciseRepo{db: db} }

func (r *ExerciseRepo) Upsert(ctx context.Context, e Exercise) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO exercises(id, name, muscle_group, equipment)
	VALUES(?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 muscle_group=excluded.muscle_group,
	 equipment=excluded.equipment;
	`, e.ID, e.Name, e.MuscleGroup, e.Equipment)
	return err
}

func (r *ExerciseRepo) List(ctx context.Context) ([]Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, muscle_group, equipment FROM exercises ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
