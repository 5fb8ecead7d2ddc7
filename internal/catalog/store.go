// Package catalog is the file-backed theme backend. It loads catalog files,
// serves gift themes page by page and watches the file for edits.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pstuifzand/tui-reconcile/internal/model"
)

// Store reads and writes a catalog file. The format follows the extension:
// .yaml and .yml are YAML, everything else is JSON.
type Store struct {
	FilePath string
}

// NewStore creates a store for the given file path
func NewStore(filePath string) *Store {
	return &Store{
		FilePath: filePath,
	}
}

func (s *Store) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.FilePath))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the catalog. A missing file is an empty catalog.
func (s *Store) Load() (*model.Catalog, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var c model.Catalog
	if s.isYAML() {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	for i, g := range c.Gifts {
		if g.ID == "" {
			return nil, fmt.Errorf("gift %d has no id", i)
		}
		if model.ReservedID(g.ID) {
			return nil, fmt.Errorf("gift %d: id %q uses a reserved prefix", i, g.ID)
		}
	}
	return &c, nil
}

// Save writes the catalog, creating the directory when needed
func (s *Store) Save(c *model.Catalog) error {
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// FileExists checks if the catalog file exists
func (s *Store) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}
