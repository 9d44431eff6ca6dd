// Package settings persists the user's formatting toggle.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const settingsFileName = "settings.json"

// Settings is the persisted state.
type Settings struct {
	Active bool `json:"active"`
}

// Store manages persistent settings. Formatting is active until the user
// turns it off.
type Store struct {
	path string
	data Settings
	mu   sync.RWMutex
}

// Open loads settings from XDG_STATE_HOME/codeformat/.
func Open() (*Store, error) {
	return OpenDir(StateDir())
}

// OpenDir loads settings from dir, creating it if needed. A missing or
// unreadable settings file leaves formatting active.
func OpenDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	s := &Store{
		path: filepath.Join(dir, settingsFileName),
		data: Settings{Active: true},
	}
	if err := s.load(); err != nil {
		s.data = Settings{Active: true}
	}
	return s, nil
}

// StateDir returns XDG_STATE_HOME/codeformat or ~/.local/state/codeformat.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "codeformat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "codeformat")
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Active reports whether formatting is switched on.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Active
}

// SetActive switches formatting on or off and saves the change.
func (s *Store) SetActive(active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Active = active
	return s.save()
}

// Reload rereads the settings file so changes made by another process
// (the CLI toggling the server's store) take effect.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Settings{Active: true}
	if err := s.load(); err != nil {
		s.data = Settings{Active: true}
	}
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
