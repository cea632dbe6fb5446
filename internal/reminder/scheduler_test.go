package reminder

import (
	"sync"
	"testing"
	"time"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingNotifier) Notify(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, title+": "+body)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestScheduleRefusesPastDeadline(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	if s.Schedule("a", time.Now().Add(-time.Minute), func() {}) {
		t.Error("past deadline was accepted")
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending = %d, want 0", got)
	}
}

func TestScheduleFires(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	fired := make(chan struct{})
	if !s.Schedule("a", time.Now().Add(20*time.Millisecond), func() { close(fired) }) {
		t.Fatal("future deadline refused")
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never fired")
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending = %d after firing, want 0", got)
	}
}

func TestCancelStopsReminder(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	fired := make(chan struct{})
	s.Schedule("a", time.Now().Add(30*time.Millisecond), func() { close(fired) })
	s.Cancel("a")

	select {
	case <-fired:
		t.Fatal("cancelled reminder fired")
	case <-time.After(100 * time.Millisecond):
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending = %d, want 0", got)
	}
}

func TestCancelUnknownIDIsNoop(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()
	s.Cancel("nope")
}

func TestScheduleReplacesExisting(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	first := make(chan struct{})
	second := make(chan struct{})
	s.Schedule("a", time.Now().Add(30*time.Millisecond), func() { close(first) })
	s.Schedule("a", time.Now().Add(60*time.Millisecond), func() { close(second) })

	if got := s.Pending(); got != 1 {
		t.Fatalf("Pending = %d, want 1", got)
	}

	select {
	case <-first:
		t.Fatal("replaced reminder fired")
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement never fired")
	}
}

func TestShutdownCancelsAll(t *testing.T) {
	s := NewScheduler()
	s.Schedule("a", time.Now().Add(time.Hour), func() {})
	s.Schedule("b", time.Now().Add(time.Hour), func() {})

	s.Shutdown()

	if got := s.Pending(); got != 0 {
		t.Errorf("Pending = %d after Shutdown, want 0", got)
	}
}

// ==================== Task callbacks ====================

func TestTaskCallbackNotifiesOpenTask(t *testing.T) {
	n := &recordingNotifier{}
	lookup := func(id string) (string, bool, bool) {
		return "write report", false, true
	}

	TaskCallback(lookup, n, "a")()

	if n.count() != 1 {
		t.Fatalf("notifications = %d, want 1", n.count())
	}
	if want := "Task deadline: write report"; n.calls[0] != want {
		t.Errorf("call = %q, want %q", n.calls[0], want)
	}
}

func TestTaskCallbackSkipsCompletedTask(t *testing.T) {
	n := &recordingNotifier{}
	lookup := func(id string) (string, bool, bool) {
		return "done already", true, true
	}

	TaskCallback(lookup, n, "a")()

	if n.count() != 0 {
		t.Errorf("completed task produced %d notifications", n.count())
	}
}

func TestTaskCallbackSkipsMissingTask(t *testing.T) {
	n := &recordingNotifier{}
	lookup := func(id string) (string, bool, bool) {
		return "", false, false
	}

	TaskCallback(lookup, n, "a")()

	if n.count() != 0 {
		t.Errorf("missing task produced %d notifications", n.count())
	}
}
