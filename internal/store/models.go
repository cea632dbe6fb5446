package store

import "time"

// Session is one completed focus interval. Sessions are append-only; no code
// path mutates or deletes them.
type Session struct {
	ID          int64
	Timestamp   time.Time
	DurationMin int
	Mode        string // focus, shortBreak, longBreak
}

type Task struct {
	ID          string
	Text        string
	Completed   bool
	CreatedAt   time.Time
	Deadline    *time.Time
	ReminderSet bool
}

type Bookmark struct {
	ID       int64
	Name     string
	URL      string
	Position int
}

type Setting struct {
	Key   string
	Value string
}

// TaskFilter selects tasks by completion state; a nil Completed matches all.
type TaskFilter struct {
	Completed *bool
}
