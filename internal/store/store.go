package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS sessions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp    TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		mode         TEXT NOT NULL DEFAULT 'focus'
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp);

	CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		text         TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		deadline     TEXT,
		reminder_set INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS focus_notes (
		day  TEXT PRIMARY KEY,
		note TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookmarks (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		url      TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('focus_minutes',         '25'),
		('short_break_minutes',   '5'),
		('long_break_minutes',    '15'),
		('cycles_per_long_break', '4'),
		('week_start',            'monday'),
		('theme',                 'aurora'),
		('notifications',         'on'),
		('latitude',              '21.0285'),
		('longitude',             '105.8542');

	INSERT OR IGNORE INTO bookmarks (name, url, position) VALUES
		('Gmail',   'https://mail.google.com',  1),
		('Google',  'https://google.com',       2),
		('GitHub',  'https://github.com',       3),
		('YouTube', 'https://youtube.com',      4),
		('ChatGPT', 'https://chat.openai.com',  5),
		('Spotify', 'https://open.spotify.com', 6),
		('Notion',  'https://notion.so',        7),
		('Figma',   'https://figma.com',        8);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/prodomo/prodomo.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "prodomo", "prodomo.db"), nil
}
