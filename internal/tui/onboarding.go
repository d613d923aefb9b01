package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlo/stride/internal/database/repository"
)

const (
	stepName = iota
	stepGoal
	stepLevel
	stepTarget
	stepConfirm
)

var (
	goalOptions  = []string{"Get stronger", "Lose weight", "Build endurance", "Stay active"}
	levelOptions = []string{"beginner", "intermediate", "advanced"}
)

type onboardingState struct {
	step   int
	name   string
	goal   int
	level  int
	target int
	busy   bool
}

func newOnboardingState(p *repository.Profile) onboardingState {
	s := onboardingState{target: 3}
	if p == nil {
		return s
	}
	s.name = p.FullName
	for i, g := range goalOptions {
		if g == p.Goal {
			s.goal = i
		}
	}
	for i, l := range levelOptions {
		if l == p.FitnessLevel {
			s.level = i
		}
	}
	if p.WeeklyTarget > 0 {
		s.target = p.WeeklyTarget
	}
	return s
}

func (a *App) handleOnboardingKey(msg tea.KeyMsg) tea.Cmd {
	o := &a.onboarding
	if o.busy {
		return nil
	}

	switch msg.String() {
	case "esc":
		if o.step > stepName {
			o.step--
		}
		return nil
	case "enter":
		return a.advanceOnboarding()
	}

	switch o.step {
	case stepName:
		switch {
		case msg.String() == "backspace":
			if len(o.name) > 0 {
				o.name = o.name[:len(o.name)-1]
			}
		case msg.Type == tea.KeyRunes:
			o.name += string(msg.Runes)
		}
	case stepGoal:
		o.goal = cycleOption(o.goal, len(goalOptions), msg)
	case stepLevel:
		o.level = cycleOption(o.level, len(levelOptions), msg)
	case stepTarget:
		switch msg.String() {
		case "up", "k", "+":
			if o.target < 7 {
				o.target++
			}
		case "down", "j", "-":
			if o.target > 1 {
				o.target--
			}
		}
	}
	return nil
}

func cycleOption(cur, n int, msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k":
		return (cur + n - 1) % n
	case "down", "j":
		return (cur + 1) % n
	}
	return cur
}

func (a *App) advanceOnboarding() tea.Cmd {
	o := &a.onboarding
	switch o.step {
	case stepName:
		if strings.TrimSpace(o.name) == "" {
			a.toasts.Info("Tell us your name first")
			return nil
		}
		o.step++
	case stepGoal, stepLevel, stepTarget:
		o.step++
	case stepConfirm:
		o.busy = true
		return a.completeOnboardingCmd(repository.Profile{
			UserID:       a.userID(),
			FullName:     strings.TrimSpace(o.name),
			Goal:         goalOptions[o.goal],
			FitnessLevel: levelOptions[o.level],
			WeeklyTarget: o.target,
		})
	}
	return nil
}

func (a *App) renderOnboarding() string {
	o := a.onboarding
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Stride") + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("step %d of 5", o.step+1)) + "\n\n")

	switch o.step {
	case stepName:
		b.WriteString("What should we call you?\n\n")
		b.WriteString("  " + o.name + keyStyle.Render("_") + "\n")
	case stepGoal:
		b.WriteString("What's your main goal?\n\n")
		b.WriteString(renderOptions(goalOptions, o.goal))
	case stepLevel:
		b.WriteString("How would you rate your fitness?\n\n")
		b.WriteString(renderOptions(levelOptions, o.level))
	case stepTarget:
		b.WriteString("How many workouts a week?\n\n")
		b.WriteString("  " + keyStyle.Render(fmt.Sprintf("%d", o.target)) +
			mutedStyle.Render("  (up/down to change)") + "\n")
	case stepConfirm:
		b.WriteString("Ready to go?\n\n")
		b.WriteString("  Name:   " + o.name + "\n")
		b.WriteString("  Goal:   " + goalOptions[o.goal] + "\n")
		b.WriteString("  Level:  " + levelOptions[o.level] + "\n")
		b.WriteString(fmt.Sprintf("  Target: %d workouts/week\n", o.target))
	}

	b.WriteString("\n")
	if o.busy {
		b.WriteString(mutedStyle.Render("Saving...") + "\n")
	} else {
		b.WriteString(keyStyle.Render("[enter]") + " continue  " +
			keyStyle.Render("[esc]") + " back\n")
	}
	return b.String()
}

func renderOptions(opts []string, selected int) string {
	var b strings.Builder
	for i, opt := range opts {
		if i == selected {
			b.WriteString("  " + keyStyle.Render("> "+opt) + "\n")
		} else {
			b.WriteString("    " + opt + "\n")
		}
	}
	return b.String()
}
