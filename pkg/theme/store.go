package theme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/folio/pkg/fsutil"
)

// FileStore keeps the theme in a small YAML file.
type FileStore struct {
	Path string
}

type stateFile struct {
	Theme Theme `yaml:"theme"`
}

// DefaultStatePath returns $XDG_STATE_HOME/folio/state.yaml, falling back
// to ~/.local/state.
func DefaultStatePath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "folio", "state.yaml"), nil
}

// Load implements Store.
func (s FileStore) Load() (Theme, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}

	var state stateFile
	if err := yaml.Unmarshal(data, &state); err != nil {
		return "", fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return state.Theme, nil
}

// Save implements Store.
func (s FileStore) Save(t Theme) error {
	data, err := yaml.Marshal(stateFile{Theme: t})
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return fsutil.WriteAtomic(context.Background(), s.Path, data, 0o600)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
}

// Load implements Store.
func (m *MemoryStore) Load() (Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, nil
}

// Save implements Store.
func (m *MemoryStore) Save(t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
	return nil
}
