package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes a todo list as a JSON file.
type Store struct {
	Path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) Store {
	return Store{Path: path}
}

// DefaultPath returns the per-user location of the todo file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("todo: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "tuido", "todos.json"), nil
}

// Load reads the stored items. A missing file is a first run and yields an
// empty list, not an error.
func (s Store) Load() ([]Item, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("todo: read %s: %w", s.Path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("todo: decode %s: %w", s.Path, err)
	}
	return items, nil
}

// Save writes items to the store file, creating parent directories as
// needed. A nil slice is stored as an empty list.
func (s Store) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("todo: encode items: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("todo: create %s: %w", filepath.Dir(s.Path), err)
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("todo: write %s: %w", s.Path, err)
	}
	return nil
}
