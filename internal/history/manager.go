// Package history persists the picker's small lists between runs: the
// recently selected themes and the command prompt history.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the TOML file holding every list
const FileName = "history.toml"

// Manager reads and writes named lists in one TOML file under its
// directory. Saving one list keeps the others.
type Manager struct {
	path string
	mu   sync.Mutex
}

type historyFile struct {
	Lists map[string][]string `toml:"lists"`
}

// NewManager opens the history under ~/.local/share/tui-reconcile
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(homeDir, ".local", "share", "tui-reconcile"))
}

// NewManagerAt opens the history in dir, creating it when needed
func NewManagerAt(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Manager{path: filepath.Join(dir, FileName)}, nil
}

// Path returns the history file
func (m *Manager) Path() string {
	return m.path
}

// Load returns the list stored under name. Missing and unreadable TOML
// give an empty list.
func (m *Manager) Load(name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.read()
	if err != nil {
		return nil, err
	}
	return append([]string{}, f.Lists[name]...), nil
}

// Save replaces the list stored under name
func (m *Manager) Save(name string, entries []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.read()
	if err != nil {
		return err
	}
	f.Lists[name] = entries

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".history-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), m.path)
}

func (m *Manager) read() (*historyFile, error) {
	f := &historyFile{Lists: map[string][]string{}}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, f); err != nil || f.Lists == nil {
		// a corrupted file starts over
		return &historyFile{Lists: map[string][]string{}}, nil
	}
	return f, nil
}
