package tui

import (
	"github.com/arlo/stride/internal/auth"
	"github.com/arlo/stride/internal/database/repository"
	"github.com/arlo/stride/internal/service"
	"github.com/arlo/stride/internal/toast"
)

// authStateMsg carries a provider snapshot into the update loop.
type authStateMsg auth.State

// watchdogMsg fires when the provider readiness timer expires. Gen
// ties it to the arm that scheduled it; a stale gen means loading
// already resolved and the tick must be ignored.
type watchdogMsg struct {
	gen int
}

// toastEventMsg carries a toast bus event into the update loop.
type toastEventMsg toast.Event

type loginResultMsg struct {
	err error
}

type onboardResultMsg struct {
	err error
}

type logoutMsg struct {
	err error
}

type todayMsg struct {
	view  service.TodayView
	stats service.WeekStats
	err   error
}

type chatHistoryMsg struct {
	msgs []repository.ChatMessage
	err  error
}

type coachReplyMsg struct {
	msgs []repository.ChatMessage
	err  error
}

type workoutDoneMsg struct {
	err error
}

type planLoadedMsg struct {
	plan      *repository.Plan
	workouts  []repository.Workout
	exercises []repository.Exercise
	err       error
}
