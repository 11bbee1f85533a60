// Package colorstore persists per-user color overrides chosen through the
// chat "color" command.
package colorstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/museun/streamchat/ircwire"
)

// ErrTooDark is returned by Set when the candidate color's HSL lightness is
// below 30.
var ErrTooDark = fmt.Errorf("color is too dark")

// Store is a persisted user-id -> RGB map. All methods are safe for
// concurrent use, though spec.md's concurrency model confines mutation to a
// single thread in practice.
type Store struct {
	mu   sync.Mutex
	path string
	log  *logrus.Entry
	data map[uint64]ircwire.RGB
}

// Open loads the store from path if present, starting empty otherwise.
// A malformed or unreadable file is treated as an empty store, not an error.
func Open(path string, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Store{
		path: path,
		log:  log,
		data: make(map[uint64]ircwire.RGB),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warn("colorstore: could not read file, starting empty")
		}
		return
	}
	var decoded map[string]ircwire.RGB
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.log.WithError(err).Warn("colorstore: malformed file, starting empty")
		return
	}
	for k, v := range decoded {
		id, err := parseUserID(k)
		if err != nil {
			continue
		}
		s.data[id] = v
	}
}

// Get returns the stored color for a user, if any.
func (s *Store) Get(userID uint64) (ircwire.RGB, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rgb, ok := s.data[userID]
	return rgb, ok
}

// Set stores rgb for userID and persists, rejecting colors darker than the
// HSL lightness floor.
func (s *Store) Set(userID uint64, rgb ircwire.RGB) error {
	if rgb.IsDark() {
		return ErrTooDark
	}
	s.mu.Lock()
	s.data[userID] = rgb
	s.mu.Unlock()
	return s.save()
}

// Remove erases any stored color for userID and persists.
func (s *Store) Remove(userID uint64) error {
	s.mu.Lock()
	delete(s.data, userID)
	s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	s.mu.Lock()
	encoded := make(map[string]ircwire.RGB, len(s.data))
	for k, v := range s.data {
		encoded[fmt.Sprintf("%d", k)] = v
	}
	s.mu.Unlock()

	raw, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		s.log.WithError(err).Error("colorstore: marshal failed")
		return fmt.Errorf("colorstore: marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.WithError(err).Error("colorstore: mkdir failed")
		return fmt.Errorf("colorstore: mkdir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.log.WithError(err).Error("colorstore: write failed")
		return fmt.Errorf("colorstore: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.WithError(err).Error("colorstore: rename failed")
		return fmt.Errorf("colorstore: rename: %w", err)
	}
	return nil
}

// Close saves the store best-effort, logging but not returning a failure.
func (s *Store) Close() {
	if err := s.save(); err != nil {
		s.log.WithError(err).Warn("colorstore: best-effort save on close failed")
	}
}

func parseUserID(s string) (uint64, error) {
	var id uint64
	_, err := fmt.Sscanf(s, "%d", &id)
	return id, err
}
