package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arlo/stride/internal/database/repository"
)

// WeekStats summarizes workout completion for the current week.
type WeekStats struct {
	Done   int
	Target int
}

// TodayView is everything the dashboard needs about today's session.
type TodayView struct {
	Workout   *repository.Workout
	Exercises []repository.WorkoutExercise
	Done      bool
}

// PlanService resolves the active plan's schedule and records
// completed workouts.
type PlanService struct {
	Plans     *repository.PlanRepo
	Exercises *repository.ExerciseRepo
	Log       *repository.WorkoutLogRepo
}

// Library returns every known exercise, for browsing and search.
func (s *PlanService) Library(ctx context.Context) ([]repository.Exercise, error) {
	return s.Exercises.List(ctx)
}

// ActivePlan returns the plan to schedule from. With a single seeded
// plan this is simply the first; plan selection is a future concern.
func (s *PlanService) ActivePlan(ctx context.Context) (*repository.Plan, error) {
	plans, err := s.Plans.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}
	p := plans[0]
	return &p, nil
}

// Today resolves the workout scheduled for the given day. DayIndex 0
// is Monday, matching how plans are authored.
func (s *PlanService) Today(ctx context.Context, userID string, now time.Time) (TodayView, error) {
	plan, err := s.ActivePlan(ctx)
	if err != nil {
		return TodayView{}, err
	}
	if plan == nil {
		return TodayView{}, nil
	}
	workouts, err := s.Plans.Workouts(ctx, plan.ID)
	if err != nil {
		return TodayView{}, err
	}
	if len(workouts) == 0 {
		return TodayView{}, nil
	}

	day := mondayIndex(now.Weekday())
	var today *repository.Workout
	for i := range workouts {
		if workouts[i].DayIndex == day {
			today = &workouts[i]
			break
		}
	}
	if today == nil {
		return TodayView{}, nil
	}

	exercises, err := s.Plans.ExercisesFor(ctx, today.ID)
	if err != nil {
		return TodayView{}, err
	}
	done, err := s.Log.DoneToday(ctx, userID, today.ID, now.UTC())
	if err != nil {
		return TodayView{}, err
	}
	return TodayView{Workout: today, Exercises: exercises, Done: done}, nil
}

// MarkDone records a completion for the workout.
func (s *PlanService) MarkDone(ctx context.Context, userID, workoutID string, now time.Time) error {
	w, err := s.Plans.WorkoutByID(ctx, workoutID)
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("unknown workout %s", workoutID)
	}
	return s.Log.Insert(ctx, repository.LogEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		WorkoutID:   workoutID,
		CompletedAt: now.UTC(),
	})
}

// WeekStats counts completions since the start of the current week
// (Monday) against the profile's weekly target.
func (s *PlanService) WeekStats(ctx context.Context, userID string, target int, now time.Time) (WeekStats, error) {
	start := startOfWeek(now.UTC())
	entries, err := s.Log.CompletedSince(ctx, userID, start)
	if err != nil {
		return WeekStats{}, err
	}
	return WeekStats{Done: len(entries), Target: target}, nil
}

func mondayIndex(d time.Weekday) int {
	// time.Weekday has Sunday = 0
	return (int(d) + 6) % 7
}

func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -mondayIndex(t.Weekday()))
}
