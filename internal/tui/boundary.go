package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Boundary guards the screen subtree. A panic during update or render
// trips it into a failed state; the shell then shows a static recovery
// view until Reset is invoked. All panics are treated uniformly and
// nothing retries automatically.
type Boundary struct {
	err error
}

func (b *Boundary) Failed() bool { return b.err != nil }

func (b *Boundary) Err() error { return b.err }

// Reset clears the failure so the next render attempts the subtree
// again.
func (b *Boundary) Reset() { b.err = nil }

// Render runs fn, converting a panic into the failed state. While
// failed it returns "" without calling fn.
func (b *Boundary) Render(fn func() string) (out string) {
	if b.err != nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			b.err = fmt.Errorf("screen failure: %v", r)
			out = ""
		}
	}()
	return fn()
}

// Update runs fn, converting a panic into the failed state. While
// failed it drops the update.
func (b *Boundary) Update(fn func() tea.Cmd) (cmd tea.Cmd) {
	if b.err != nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			b.err = fmt.Errorf("screen failure: %v", r)
			cmd = nil
		}
	}()
	return fn()
}
