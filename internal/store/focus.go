package store

import (
	"database/sql"
	"fmt"
)

// FocusNote returns the intent note for a calendar day (YYYY-MM-DD), or ""
// when none was set. Notes from earlier days are never returned for today,
// so the note effectively expires at midnight.
func (s *Store) FocusNote(day string) (string, error) {
	var note string
	err := s.db.QueryRow(`SELECT note FROM focus_notes WHERE day = ?`, day).Scan(&note)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get focus note: %w", err)
	}
	return note, nil
}

func (s *Store) SetFocusNote(day, note string) error {
	_, err := s.db.Exec(
		`INSERT INTO focus_notes (day, note) VALUES (?, ?) ON CONFLICT(day) DO UPDATE SET note = excluded.note`,
		day, note,
	)
	if err != nil {
		return fmt.Errorf("set focus note: %w", err)
	}
	return nil
}

func (s *Store) ClearFocusNote(day string) error {
	_, err := s.db.Exec(`DELETE FROM focus_notes WHERE day = ?`, day)
	if err != nil {
		return fmt.Errorf("clear focus note: %w", err)
	}
	return nil
}
