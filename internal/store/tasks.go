package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateTask inserts a new incomplete task. ReminderSet records whether the
// task qualifies for a deadline reminder (future deadline); actually
// scheduling one is the caller's business.
func (s *Store) CreateTask(text string, deadline *time.Time) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("create task: empty text")
	}

	now := time.Now().UTC()
	t := &Task{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: now,
		Deadline:  deadline,
	}
	var deadlineStr sql.NullString
	if deadline != nil {
		deadlineStr = sql.NullString{String: deadline.UTC().Format(time.RFC3339), Valid: true}
		t.ReminderSet = deadline.After(now)
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (id, text, completed, created_at, deadline, reminder_set) VALUES (?, ?, 0, ?, ?, ?)`,
		t.ID, t.Text, now.Format(time.RFC3339), deadlineStr, boolToInt(t.ReminderSet),
	)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// GetTask returns nil (no error) when the id is unknown.
func (s *Store) GetTask(id string) (*Task, error) {
	row := s.db.QueryRow(
		`SELECT id, text, completed, created_at, deadline, reminder_set FROM tasks WHERE id = ?`, id,
	)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

// ToggleTask flips the completed flag. Unknown ids are a no-op.
func (s *Store) ToggleTask(id string) error {
	_, err := s.db.Exec(`UPDATE tasks SET completed = 1 - completed WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle task %s: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Unknown ids are a no-op.
func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// ListTasks returns tasks newest-created first.
func (s *Store) ListTasks(f TaskFilter) ([]Task, error) {
	query := `SELECT id, text, completed, created_at, deadline, reminder_set FROM tasks`
	var args []any
	if f.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, boolToInt(*f.Completed))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			continue
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanTask(scan func(dest ...any) error) (*Task, error) {
	t := &Task{}
	var completed, reminderSet int
	var createdAt string
	var deadline sql.NullString
	if err := scan(&t.ID, &t.Text, &completed, &createdAt, &deadline, &reminderSet); err != nil {
		return nil, err
	}
	t.Completed = completed == 1
	t.ReminderSet = reminderSet == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deadline.Valid {
		if d, err := time.Parse(time.RFC3339, deadline.String); err == nil {
			t.Deadline = &d
		}
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
