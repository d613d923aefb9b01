package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arlo/stride/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestMigrateAndSeed(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := openTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))

	exercises, err := repository.NewExerciseRepo(db).List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	plans, err := repository.NewPlanRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	workouts, err := repository.NewPlanRepo(db).Workouts(ctx, plans[0].ID)
	require.NoError(t, err)
	require.Len(t, workouts, 7)

	// seeding twice must not duplicate
	require.NoError(t, SeedDefaults(ctx, db))
	again, err := repository.NewExerciseRepo(db).List(ctx)
	require.NoError(t, err)
	require.Equal(t, len(exercises), len(again))

	demo, err := repository.NewUserRepo(db).ByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, demo)

	profile, err := repository.NewProfileRepo(db).ByUserID(ctx, demo.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.False(t, profile.OnboardingComplete)
}

func TestNowStampsStoredRows(t *testing.T) {
	t.Parallel()

	n := Now()
	require.Equal(t, time.UTC, n.Location())
	require.Zero(t, n.Nanosecond())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := openTestDB(t)
	before := Now()
	require.NoError(t, SeedDefaults(ctx, db))

	demo, err := repository.NewUserRepo(db).ByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, demo)
	require.Zero(t, demo.CreatedAt.Nanosecond())
	require.False(t, demo.CreatedAt.Before(before))
	require.Equal(t, demo.CreatedAt, demo.UpdatedAt)
}

func TestResetClearsRows(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := openTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, Reset(db))

	plans, err := repository.NewPlanRepo(db).List(ctx)
	require.NoError(t, err)
	require.Empty(t, plans)

	demo, err := repository.NewUserRepo(db).ByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.Nil(t, demo)
}

func TestWorkoutLogRoundTrip(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := openTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))

	demo, err := repository.NewUserRepo(db).ByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, demo)

	plans, err := repository.NewPlanRepo(db).List(ctx)
	require.NoError(t, err)
	workouts, err := repository.NewPlanRepo(db).Workouts(ctx, plans[0].ID)
	require.NoError(t, err)

	logRepo := repository.NewWorkoutLogRepo(db)
	now := time.Now().UTC()
	entry := repository.LogEntry{ID: "log-1", UserID: demo.ID, WorkoutID: workouts[0].ID, CompletedAt: now}
	require.NoError(t, logRepo.Insert(ctx, entry))

	done, err := logRepo.DoneToday(ctx, demo.ID, workouts[0].ID, now)
	require.NoError(t, err)
	require.True(t, done)

	since, err := logRepo.CompletedSince(ctx, demo.ID, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, since, 1)

	none, err := logRepo.CompletedSince(ctx, demo.ID, now.Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, none)
}
