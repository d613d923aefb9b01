package repository

import "time"

// User represents a user row. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile represents a profile row.
type Profile struct {
	UserID             string
	FullName           string
	Goal               string
	FitnessLevel       string
	WeeklyTarget       int
	OnboardingComplete bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Session represents a persisted login session.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Exercise represents an exercise library row.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup string
	Equipment   string
}

// Plan represents a training plan.
type Plan struct {
	ID    string
	Name  string
	Level string
	Weeks int
}

// Workout represents one session within a plan. DayIndex is the
// weekday slot (0 = Monday).
type Workout struct {
	ID          string
	PlanID      string
	DayIndex    int
	Title       string
	Focus       string
	DurationMin int
}

// WorkoutExercise links an exercise into a workout with a prescription.
type WorkoutExercise struct {
	WorkoutID  string
	ExerciseID string
	Name       string
	Sets       int
	Reps       string
	Position   int
}

// LogEntry records a completed workout.
type LogEntry struct {
	ID          string
	UserID      string
	WorkoutID   string
	CompletedAt time.Time
}

// ChatMessage represents one turn in the coach conversation.
type ChatMessage struct {
	ID        string
	UserID    string
	Role      string // "user" or "coach"
	Body      string
	CreatedAt time.Time
}
