package store

import (
	"database/sql"
	"fmt"
	"time"
)

// AppendSession persists a completed focus interval. The caller decides what
// to do on failure; the store neither retries nor rolls anything back.
func (s *Store) AppendSession(timestamp time.Time, durationMin int, mode string) (*Session, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("append session: duration %d must be positive", durationMin)
	}
	res, err := s.db.Exec(
		`INSERT INTO sessions (timestamp, duration_min, mode) VALUES (?, ?, ?)`,
		timestamp.UTC().Format(time.RFC3339), durationMin, mode,
	)
	if err != nil {
		return nil, fmt.Errorf("append session: %w", err)
	}
	id, _ := res.LastInsertId()
	return &Session{ID: id, Timestamp: timestamp, DurationMin: durationMin, Mode: mode}, nil
}

// ListSessions returns all sessions in insertion order. Rows that fail to
// scan or carry an unparseable timestamp are dropped rather than failing the
// whole list; the aggregators always get a usable (possibly empty) slice.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, duration_min, mode FROM sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var ts sql.NullString
		var duration sql.NullInt64
		var mode sql.NullString
		if err := rows.Scan(&sess.ID, &ts, &duration, &mode); err != nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, ts.String)
		if err != nil || duration.Int64 <= 0 {
			continue
		}
		sess.Timestamp = t
		sess.DurationMin = int(duration.Int64)
		sess.Mode = mode.String
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// CountSessions reports how many sessions are persisted, malformed rows
// included.
func (s *Store) CountSessions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
