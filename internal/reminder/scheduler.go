// Package reminder schedules one-shot deadline callbacks for tasks. Each
// pending reminder is a cancellable handle keyed by task id, so deleting a
// task can (and does) cancel its reminder instead of leaking it.
package reminder

import (
	"sync"
	"time"
)

// Notifier posts a user-visible notification. Failures are the notifier's
// problem; reminders are never retried.
type Notifier interface {
	Notify(title, body string) error
}

type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// Schedule arms a one-shot callback for the given task id at the given
// instant. Past instants are refused. Scheduling again for the same id
// replaces the earlier reminder.
func (s *Scheduler) Schedule(id string, at time.Time, fire func()) bool {
	d := time.Until(at)
	if d <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		fire()
	})
	return true
}

// Cancel stops a pending reminder. Unknown ids are a no-op.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports how many reminders are armed.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown cancels everything; used on app teardown.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// TaskCallback builds the function fired at a task deadline. At fire time the
// task is looked up again: a deleted or already-completed task produces no
// notification.
func TaskCallback(lookup func(id string) (text string, completed bool, ok bool), n Notifier, id string) func() {
	return func() {
		text, completed, ok := lookup(id)
		if !ok || completed {
			return
		}
		// Best effort; a failed notification is dropped.
		_ = n.Notify("Task deadline", text)
	}
}
