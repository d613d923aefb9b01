package toast

import (
	"testing"
	"time"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestShowNotifiesSubscriber(t *testing.T) {
	b := New(time.Minute)
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	b.Show("saved", KindSuccess)
	e := recvEvent(t, ch)
	if !e.Visible {
		t.Fatal("expected visible event")
	}
	if e.Toast.Message != "saved" || e.Toast.Kind != KindSuccess {
		t.Errorf("unexpected toast: %+v", e.Toast)
	}
}

func TestShowOverwritesNotQueues(t *testing.T) {
	b := New(time.Minute)

	b.Show("first", KindInfo)
	b.Show("second", KindInfo)
	b.Show("third", KindError)

	v := b.Visible()
	if v == nil {
		t.Fatal("expected a visible toast")
	}
	if v.Message != "third" {
		t.Errorf("visible = %q, want third", v.Message)
	}
}

func TestAutoHide(t *testing.T) {
	b := New(20 * time.Millisecond)
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	b.Show("soon gone", KindInfo)
	if e := recvEvent(t, ch); !e.Visible {
		t.Fatal("expected show event first")
	}
	e := recvEvent(t, ch)
	if e.Visible {
		t.Fatal("expected hide event")
	}
	if b.Visible() != nil {
		t.Error("toast should be hidden")
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	b := New(time.Minute)
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	b.Show("bye", KindInfo)
	recvEvent(t, ch)

	b.Dismiss()
	e := recvEvent(t, ch)
	if e.Visible {
		t.Fatal("expected hide event")
	}

	// second dismiss publishes nothing
	b.Dismiss()
	select {
	case e := <-ch:
		t.Fatalf("unexpected event after idempotent dismiss: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

// The replacement toast inherits the predecessor's running timer: the
// old timer's expiry hides whatever is visible. Documented behavior,
// kept as observed.
func TestStaleTimerHidesReplacement(t *testing.T) {
	b := New(30 * time.Millisecond)

	b.Show("first", KindInfo)
	time.Sleep(15 * time.Millisecond)
	b.Show("second", KindInfo)

	time.Sleep(30 * time.Millisecond) // first timer has fired by now
	if b.Visible() != nil {
		t.Error("first toast's timer should have hidden the display")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(time.Minute)
	id, ch := b.Subscribe()
	b.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed")
	}
	// publishing after unsubscribe must not panic
	b.Show("nobody listening", KindInfo)
}
