// Package toast is a small publish/subscribe notifier for transient
// messages. The application root owns one Bus and injects it; screens
// publish, the shell's single visual subscriber renders.
package toast

import (
	"sync"
	"time"
)

// DefaultDuration is how long a toast stays visible unless dismissed.
const DefaultDuration = 3000 * time.Millisecond

// Kind classifies a toast for styling.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// Toast is one displayed notification.
type Toast struct {
	Message string
	Kind    Kind
}

// Event is delivered to subscribers. Visible=false means the display
// was hidden (auto-hide or dismiss).
type Event struct {
	Visible bool
	Toast   Toast
}

// Bus broadcasts toasts to subscribers. There is no queue: showing
// while a toast is visible overwrites it. The previous toast's
// auto-hide timer keeps running and will hide whatever is visible when
// it fires; this matches the shipped behavior and is accepted as a
// minor visual glitch rather than silently changed.
type Bus struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Toast
	subs     map[int]chan Event
	nextSub  int
}

// New creates a Bus. A non-positive duration falls back to
// DefaultDuration.
func New(duration time.Duration) *Bus {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Bus{
		duration: duration,
		subs:     make(map[int]chan Event),
	}
}

// Subscribe registers an observer. The channel is buffered; a full
// subscriber drops events rather than blocking publishers.
func (b *Bus) Subscribe() (int, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextSub
	b.nextSub++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes an observer and closes its channel.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Show displays a toast, replacing any visible one, and arms its
// auto-hide timer.
func (b *Bus) Show(message string, kind Kind) {
	t := Toast{Message: message, Kind: kind}
	b.mu.Lock()
	b.current = &t
	b.broadcast(Event{Visible: true, Toast: t})
	b.mu.Unlock()

	time.AfterFunc(b.duration, b.Dismiss)
}

// Info is shorthand for Show with KindInfo.
func (b *Bus) Info(message string) { b.Show(message, KindInfo) }

// Success is shorthand for Show with KindSuccess.
func (b *Bus) Success(message string) { b.Show(message, KindSuccess) }

// Error is shorthand for Show with KindError.
func (b *Bus) Error(message string) { b.Show(message, KindError) }

// Dismiss hides the visible toast. Hiding when nothing is visible is a
// no-op, so dismiss and a late auto-hide timer are both idempotent.
func (b *Bus) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return
	}
	hidden := *b.current
	b.current = nil
	b.broadcast(Event{Visible: false, Toast: hidden})
}

// Visible returns the currently displayed toast, or nil.
func (b *Bus) Visible() *Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return nil
	}
	t := *b.current
	return &t
}

// caller holds b.mu
func (b *Bus) broadcast(e Event) {
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
