package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arlo/stride/internal/database/repository"
)

// Demo account credentials used by the welcome screen's demo login.
const (
	DemoEmail    = "demo@stride.app"
	DemoPassword = "stride"
)

// SeedDefaults ensures the exercise library, a starter plan and the
// demo account exist. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	if err := seedExercises(ctx, db); err != nil {
		return fmt.Errorf("seed exercises: %w", err)
	}
	if err := seedStarterPlan(ctx, db); err != nil {
		return fmt.Errorf("seed plan: %w", err)
	}
	if err := seedDemoUser(ctx, db); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}

func stableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

func seedExercises(ctx context.Context, db *sql.DB) error {
	repo := repository.NewExerciseRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []repository.Exercise{
		{Name: "Push-up", MuscleGroup: "chest", Equipment: "none"},
		{Name: "Bench Press", MuscleGroup: "chest", Equipment: "barbell"},
		{Name: "Squat", MuscleGroup: "legs", Equipment: "barbell"},
		{Name: "Goblet Squat", MuscleGroup: "legs", Equipment: "dumbbell"},
		{Name: "Lunge", MuscleGroup: "legs", Equipment: "none"},
		{Name: "Deadlift", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Pull-up", MuscleGroup: "back", Equipment: "bar"},
		{Name: "Bent-over Row", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Overhead Press", MuscleGroup: "shoulders", Equipment: "barbell"},
		{Name: "Plank", MuscleGroup: "core", Equipment: "none"},
		{Name: "Hanging Leg Raise", MuscleGroup: "core", Equipment: "bar"},
		{Name: "Burpee", MuscleGroup: "full body", Equipment: "none"},
		{Name: "Mountain Climber", MuscleGroup: "full body", Equipment: "none"},
		{Name: "Jump Rope", MuscleGroup: "cardio", Equipment: "rope"},
		{Name: "Rowing Machine", MuscleGroup: "cardio", Equipment: "machine"},
	}
	for _, e := range defaults {
		e.ID = stableID("exercise", e.Name)
		if err := repo.Upsert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func seedStarterPlan(ctx context.Context, db *sql.DB) error {
	repo := repository.NewPlanRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	planID := stableID("plan", "Foundations")
	if err := repo.Upsert(ctx, repository.Plan{ID: planID, Name: "Foundations", Level: "beginner", Weeks: 4}); err != nil {
		return err
	}

	type day struct {
		title   string
		focus   string
		minutes int
		routine []string
	}
	week := []day{
		{"Full Body A", "strength", 40, []string{"Squat", "Push-up", "Bent-over Row", "Plank"}},
		{"Conditioning", "cardio", 25, []string{"Jump Rope", "Burpee", "Mountain Climber"}},
		{"Full Body B", "strength", 40, []string{"Deadlift", "Overhead Press", "Pull-up", "Hanging Leg Raise"}},
		{"Active Recovery", "mobility", 20, []string{"Plank", "Lunge"}},
		{"Full Body C", "strength", 45, []string{"Goblet Squat", "Bench Press", "Bent-over Row", "Plank"}},
		{"Endurance", "cardio", 30, []string{"Rowing Machine", "Jump Rope"}},
		{"Rest", "rest", 0, nil},
	}
	for i, d := range week {
		w := repository.Workout{
			ID:          stableID("workout", d.title),
			PlanID:      planID,
			DayIndex:    i,
			Title:       d.title,
			Focus:       d.focus,
			DurationMin: d.minutes,
		}
		if err := repo.UpsertWorkout(ctx, w); err != nil {
			return err
		}
		for pos, name := range d.routine {
			we := repository.WorkoutExercise{
				WorkoutID:  w.ID,
				ExerciseID: stableID("exercise", name),
				Sets:       3,
				Reps:       "10",
				Position:   pos,
			}
			if err := repo.AttachExercise(ctx, we); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDemoUser(ctx context.Context, db *sql.DB) error {
	users := repository.NewUserRepo(db)
	existing, err := users.ByEmail(ctx, DemoEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := Now()
	u := repository.User{
		ID:           stableID("user", DemoEmail),
		Email:        DemoEmail,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, u); err != nil {
		return err
	}
	// demo profile starts with onboarding incomplete so the full flow
	// is reachable from a fresh install
	profiles := repository.NewProfileRepo(db)
	return profiles.Upsert(ctx, repository.Profile{UserID: u.ID, WeeklyTarget: 3})
}
