package repository

import (
	"context"
	"database/sql"
)

// PlanRepo handles plans and their workouts.
type PlanRepo struct {
	db *sql.DB
}

func NewPlanRepo(db *sql.DB) *PlanRepo { return &PlanRepo{db: db} }

func (r *PlanRepo) Upsert(ctx context.Context, p Plan) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO plans(id, name, level, weeks) VALUES(?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, level=excluded.level, weeks=excluded.weeks;
	`, p.ID, p.Name, p.Level, p.Weeks)
	return err
}

func (r *PlanRepo) List(ctx context.Context) ([]Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, level, weeks FROM plans ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Level, &p.Weeks); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlanRepo) UpsertWorkout(ctx context.Context, w Workout) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO workouts(id, plan_id, day_index, title, focus, duration_min)
	VALUES(?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 plan_id=excluded.plan_id,
	 day_index=excluded.day_index,
	 title=excluded.title,
	 focus=excluded.focus,
	 duration_min=excluded.duration_min;
	`, w.ID, w.PlanID, w.DayIndex, w.Title, w.Focus, w.DurationMin)
	return err
}

func (r *PlanRepo) Workouts(ctx context.Context, planID string) ([]Workout, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, plan_id, day_index, title, focus, duration_min
	FROM workouts WHERE plan_id = ? ORDER BY day_index`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.PlanID, &w.DayIndex, &w.Title, &w.Focus, &w.DurationMin); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *PlanRepo) WorkoutByID(ctx context.Context, id string) (*Workout, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, plan_id, day_index, title, focus, duration_min FROM workouts WHERE id = ?`, id)
	var w Workout
	if err := row.Scan(&w.ID, &w.PlanID, &w.DayIndex, &w.Title, &w.Focus, &w.DurationMin); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *PlanRepo) AttachExercise(ctx context.Context, we WorkoutExercise) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT OR IGNORE INTO workout_exercises(workout_id, exercise_id, sets, reps, position)
	VALUES(?, ?, ?, ?, ?)`, we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.Position)
	return err
}

func (r *PlanRepo) ExercisesFor(ctx context.Context, workoutID string) ([]WorkoutExercise, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT we.workout_id, we.exercise_id, e.name, we.sets, we.reps, we.position
	FROM workout_exercises we
	JOIN exercises e ON e.id = we.exercise_id
	WHERE we.workout_id = ?
	ORDER BY we.position`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WorkoutExercise
	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(&we.WorkoutID, &we.ExerciseID, &we.Name, &we.Sets, &we.Reps, &we.Position); err != nil {
			return nil, err
		}
		out = append(out, we)
	}
	return out, rows.Err()
}
