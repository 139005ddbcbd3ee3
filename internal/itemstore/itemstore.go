// Package itemstore remembers the wheel's item list between runs.
package itemstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spinwheel/internal/pathutil"

	"gopkg.in/yaml.v3"
)

type document struct {
	Items []string `yaml:"items"`
}

// FileStore persists item labels to a YAML file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is items.yaml inside the user data directory.
func DefaultPath() string {
	return filepath.Join(pathutil.DataDir(), "items.yaml")
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads stored labels, trimmed, skipping blank entries. A missing file
// yields an empty list.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read item store: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse item store: %w", err)
	}

	var labels []string
	for _, item := range doc.Items {
		if label := strings.TrimSpace(item); label != "" {
			labels = append(labels, label)
		}
	}
	return labels, nil
}

// Save writes labels, creating parent directories if needed.
func (s *FileStore) Save(labels []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create item store dir: %w", err)
	}

	data, err := yaml.Marshal(document{Items: labels})
	if err != nil {
		return fmt.Errorf("encode item store: %w", err)
	}

	return os.WriteFile(s.path, data, 0o644)
}
