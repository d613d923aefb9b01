package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlo/stride/internal/database/repository"
	"github.com/arlo/stride/internal/service"
	"github.com/arlo/stride/internal/tui/gate"
)

const (
	tabToday = iota
	tabCoach
)

type tabsState struct {
	activeTab int

	today  service.TodayView
	stats  service.WeekStats
	loaded bool

	chatHistory []repository.ChatMessage
	chatInput   string
	coachBusy   bool
}

func (a *App) handleTabsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		// two tabs, so either direction is the same toggle
		a.tabs.activeTab = (a.tabs.activeTab + 1) % 2
		return nil
	}

	if a.tabs.activeTab == tabToday {
		return a.handleTodayKey(msg)
	}
	return a.handleCoachKey(msg)
}

func (a *App) handleTodayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if a.tabs.today.Workout == nil {
			return nil
		}
		if a.tabs.today.Done {
			a.toasts.Info("Already logged for today")
			return nil
		}
		return a.markDoneCmd(a.tabs.today.Workout.ID)
	case "p":
		return a.navigate(gate.SegmentPlan)
	case "r":
		return a.loadToday()
	case "x":
		return a.logoutCmd()
	}
	return nil
}

func (a *App) handleCoachKey(msg tea.KeyMsg) tea.Cmd {
	if a.tabs.coachBusy {
		return nil
	}
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(a.tabs.chatInput)
		if text == "" {
			return nil
		}
		a.tabs.chatInput = ""
		a.tabs.coachBusy = true
		return a.sendChatCmd(text)
	case "backspace":
		if len(a.tabs.chatInput) > 0 {
			a.tabs.chatInput = a.tabs.chatInput[:len(a.tabs.chatInput)-1]
		}
		return nil
	}
	if msg.Type == tea.KeyRunes {
		a.tabs.chatInput += string(msg.Runes)
	}
	return nil
}

func (a *App) renderTabs() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Stride") + "\n\n")

	tabs := []string{"Today", "Coach"}
	for i, name := range tabs {
		if i == a.tabs.activeTab {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(inactiveTabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	if a.tabs.activeTab == tabToday {
		b.WriteString(a.renderToday())
	} else {
		b.WriteString(a.renderCoach())
	}
	return b.String()
}

func (a *App) renderToday() string {
	var b strings.Builder
	if !a.tabs.loaded {
		b.WriteString(mutedStyle.Render("Loading your day...") + "\n")
		return b.String()
	}

	if a.authState.Profile != nil && a.authState.Profile.FullName != "" {
		b.WriteString("Hi " + a.authState.Profile.FullName + "\n\n")
	}

	w := a.tabs.today.Workout
	if w == nil {
		b.WriteString(mutedStyle.Render("Nothing scheduled today. Enjoy the rest.") + "\n")
	} else {
		status := pendingStyle.Render("not yet")
		if a.tabs.today.Done {
			status = doneStyle.Render("done")
		}
		b.WriteString(fmt.Sprintf("Today: %s  (%s)\n", titleStyle.Render(w.Title), status))
		if w.Focus != "" {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%s, about %d min", w.Focus, w.DurationMin)) + "\n")
		}
		b.WriteString("\n")
		for _, ex := range a.tabs.today.Exercises {
			b.WriteString(fmt.Sprintf("  %s  %dx%s\n", ex.Name, ex.Sets, ex.Reps))
		}
	}

	b.WriteString("\n" + fmt.Sprintf("This week: %d of %d workouts\n",
		a.tabs.stats.Done, a.tabs.stats.Target))

	b.WriteString("\n" + keyStyle.Render("[enter]") + " mark done  " +
		keyStyle.Render("[p]") + " plan  " +
		keyStyle.Render("[tab]") + " coach  " +
		keyStyle.Render("[x]") + " sign out\n")
	return b.String()
}

func (a *App) renderCoach() string {
	var b strings.Builder
	if len(a.tabs.chatHistory) == 0 {
		b.WriteString(mutedStyle.Render("Ask your coach anything about training, recovery or form.") + "\n")
	}
	for _, m := range a.tabs.chatHistory {
		if m.Role == "coach" {
			b.WriteString(coachStyle.Render("coach") + "  " + m.Body + "\n")
		} else {
			b.WriteString(userStyle.Render("you") + "    " + m.Body + "\n")
		}
	}
	b.WriteString("\n")
	if a.tabs.coachBusy {
		b.WriteString(mutedStyle.Render("Coach is typing...") + "\n")
	}
	b.WriteString("> " + a.tabs.chatInput + keyStyle.Render("_") + "\n")
	b.WriteString("\n" + keyStyle.Render("[enter]") + " send  " +
		keyStyle.Render("[tab]") + " today\n")
	return b.String()
}
