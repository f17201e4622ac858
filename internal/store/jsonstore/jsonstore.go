package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/kata/internal/logging"
	"github.com/idilsaglam/kata/internal/todo"
)

// JSON-backed storage for the todo list. Single file, human-readable,
// portable. No locking; fine for a local single-user CLI.

const dataFileName = "todos.json"

// DefaultPath keeps todos next to where the command runs, so each
// directory gets its own list.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

// Store reads and writes one todo list at a fixed path.
type Store struct {
	path string
	log  logging.Logger
}

func New(path string, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{path: path, log: log}
}

func (s *Store) Load() ([]todo.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("store load: no file yet", "path", s.path)
			return []todo.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []todo.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	s.log.Debug("store load", "path", s.path, "items", len(items))
	return items, nil
}

func (s *Store) Save(items []todo.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.log.Debug("store save", "path", s.path, "items", len(items))
	return nil
}
