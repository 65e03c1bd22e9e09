// ABOUTME: Flat-file JSON implementation of the ItemStore interface
// ABOUTME: Whole-file reads and atomic whole-file writes, one store per file

package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
)

// Store persists items as a JSON array in a single file.
type Store struct {
	path   string
	logger interfaces.Logger
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, logger interfaces.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the full item sequence. A missing or unparseable file yields an
// empty sequence rather than an error.
func (s *Store) Load(ctx context.Context) ([]domain.Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn("Failed to read store file", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return []domain.Item{}, nil
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		if s.logger != nil {
			s.logger.Warn("Store file is corrupt, treating as empty", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return []domain.Item{}, nil
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// Save replaces the file content with the given sequence. The write goes to a
// temp file in the same directory and is renamed into place so a crash cannot
// leave a half-written store behind.
func (s *Store) Save(ctx context.Context, items []domain.Item) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if items == nil {
		items = []domain.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
