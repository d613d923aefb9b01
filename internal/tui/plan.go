package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlo/stride/internal/database/repository"
	"github.com/arlo/stride/internal/tui/gate"
)

type planState struct {
	plan      *repository.Plan
	workouts  []repository.Workout
	exercises []repository.Exercise
	loaded    bool

	cursor    int
	searching bool
	query     string
}

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (a *App) handlePlanKey(msg tea.KeyMsg) tea.Cmd {
	p := &a.plan

	if p.searching {
		switch msg.String() {
		case "esc":
			p.searching = false
			p.query = ""
			return nil
		case "enter":
			p.searching = false
			return nil
		case "backspace":
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
			}
			return nil
		}
		if msg.Type == tea.KeyRunes {
			p.query += string(msg.Runes)
		}
		return nil
	}

	switch msg.String() {
	case "esc", "q":
		return a.navigate(gate.SegmentTabs)
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.workouts)-1 {
			p.cursor++
		}
	case "/":
		p.searching = true
		p.query = ""
	}
	return nil
}

func (a *App) renderPlan() string {
	p := a.plan
	var b strings.Builder

	if !p.loaded {
		b.WriteString(titleStyle.Render("Plan") + "\n\n")
		b.WriteString(mutedStyle.Render("Loading...") + "\n")
		return b.String()
	}
	if p.plan == nil {
		b.WriteString(titleStyle.Render("Plan") + "\n\n")
		b.WriteString(mutedStyle.Render("No plan yet.") + "\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render(p.plan.Name) + "  " +
		mutedStyle.Render(fmt.Sprintf("%s, %d weeks", p.plan.Level, p.plan.Weeks)) + "\n\n")

	for i, w := range p.workouts {
		day := "?"
		if w.DayIndex >= 0 && w.DayIndex < len(dayNames) {
			day = dayNames[w.DayIndex]
		}
		line := fmt.Sprintf("%s  %s", day, w.Title)
		if i == p.cursor {
			b.WriteString(keyStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	if p.searching || p.query != "" {
		b.WriteString("Search: " + p.query + keyStyle.Render("_") + "\n")
		for _, ex := range searchExercises(p.exercises, p.query, 8) {
			b.WriteString("  " + ex.Name + mutedStyle.Render("  "+ex.MuscleGroup) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(keyStyle.Render("[/]") + " find exercise  " +
		keyStyle.Render("[esc]") + " back\n")
	return b.String()
}

// searchExercises ranks the library against the query. Substring hits
// come first; the rest are ordered by edit distance so typos still
// land near the intended exercise.
func searchExercises(library []repository.Exercise, query string, limit int) []repository.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(library) > limit {
			return library[:limit]
		}
		return library
	}

	type ranked struct {
		ex   repository.Exercise
		dist int
	}
	var out []ranked
	for _, ex := range library {
		name := strings.ToLower(ex.Name)
		if strings.Contains(name, query) {
			out = append(out, ranked{ex, 0})
			continue
		}
		d := levenshtein.ComputeDistance(query, name)
		if d <= len(name)/2 {
			out = append(out, ranked{ex, d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].dist < out[j].dist })

	result := make([]repository.Exercise, 0, limit)
	for _, r := range out {
		if len(result) == limit {
			break
		}
		result = append(result, r.ex)
	}
	return result
}
