package store

import "fmt"

func (s *Store) ListBookmarks() ([]Bookmark, error) {
	rows, err := s.db.Query(`SELECT id, name, url, position FROM bookmarks ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.Name, &b.URL, &b.Position); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (s *Store) AddBookmark(name, url string) (*Bookmark, error) {
	var maxPos int
	s.db.QueryRow(`SELECT COALESCE(MAX(position), 0) FROM bookmarks`).Scan(&maxPos)

	res, err := s.db.Exec(
		`INSERT INTO bookmarks (name, url, position) VALUES (?, ?, ?)`,
		name, url, maxPos+1,
	)
	if err != nil {
		return nil, fmt.Errorf("add bookmark: %w", err)
	}
	id, _ := res.LastInsertId()
	return &Bookmark{ID: id, Name: name, URL: url, Position: maxPos + 1}, nil
}

func (s *Store) DeleteBookmark(id int64) error {
	_, err := s.db.Exec(`DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	return nil
}
