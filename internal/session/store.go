// Package session persists the "who is currently logged in" record as a
// small JSON file in the application data directory, outside the relational
// store. The record survives process restarts and a database reset.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileName = "session.json"

// record is the on-disk shape. Two keys: the login flag and the user's IIN.
type record struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	UserIIN    string `json:"user_iin,omitempty"`
}

// Store reads and writes the durable session record. It is constructed
// explicitly (no package-level state) and passed to whoever needs the
// current-user context. Single-writer, single-reader within one process.
type Store struct {
	path string
}

// New returns a Store backed by a session file inside dir. The file is not
// created until the first Save; reads before that report the default
// unauthenticated state.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Save marks the session authenticated for the given user. Idempotent.
func (s *Store) Save(iin string) error {
	return s.write(record{IsLoggedIn: true, UserIIN: iin})
}

// Clear resets the session to the unauthenticated state. Idempotent, even if
// nothing was ever saved.
func (s *Store) Clear() error {
	return s.write(record{})
}

// IsLoggedIn reports whether an authenticated session is recorded. A missing
// or unreadable file counts as logged out.
func (s *Store) IsLoggedIn() bool {
	rec, err := s.read()
	if err != nil {
		return false
	}
	return rec.IsLoggedIn
}

// CurrentUserIIN returns the recorded user's IIN and true, or "" and false
// when no authenticated session exists.
func (s *Store) CurrentUserIIN() (string, bool) {
	rec, err := s.read()
	if err != nil || !rec.IsLoggedIn || rec.UserIIN == "" {
		return "", false
	}
	return rec.UserIIN, true
}

func (s *Store) read() (record, error) {
	var rec record

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rec, nil
		}
		return rec, fmt.Errorf("read session file: %w", err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("decode session file: %w", err)
	}
	return rec, nil
}

// write replaces the file via rename so a crash mid-write cannot leave a
// truncated record behind.
func (s *Store) write(rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
