// Package store implements the durable Record Store: the full user
// collection persisted as one pretty-printed JSON array in a single
// file.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/users"
)

// FileStore reads and writes the whole collection on every call; no
// in-memory copy is kept between calls. Save overwrites the file in
// full with no atomic rename, so at the file level the last writer
// wins; callers serialize their read-modify-write sequences.
type FileStore struct {
	path   string
	logger logging.Logger
}

func NewFileStore(path string, l logging.Logger) *FileStore {
	return &FileStore{path: path, logger: l.With("module", "store")}
}

// Load reads the backing file and parses it as a JSON array of user
// records. Load is fail-open: a missing, unreadable or malformed file
// yields an empty collection, logged for operator visibility but never
// surfaced as an error.
func (s *FileStore) Load(ctx context.Context) []users.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn(ctx, "error reading users file", "path", s.path, "error", err)
		return []users.User{}
	}

	var collection []users.User
	if err := json.Unmarshal(data, &collection); err != nil {
		s.logger.Warn(ctx, "error parsing users file", "path", s.path, "error", err)
		return []users.User{}
	}
	if collection == nil {
		// file contained "null"
		collection = []users.User{}
	}
	return collection
}

// Save serializes the full collection with 2-space indentation and
// overwrites the backing file, creating the parent directory first if
// needed. Failures are logged and returned.
func (s *FileStore) Save(ctx context.Context, collection []users.User) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		s.logger.Error(ctx, "error serializing users", "error", err)
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o770); err != nil {
			s.logger.Error(ctx, "error creating store directory", "dir", dir, "error", err)
			return err
		}
	}

	if err := os.WriteFile(s.path, data, 0o660); err != nil {
		s.logger.Error(ctx, "error writing users file", "path", s.path, "error", err)
		return err
	}
	return nil
}
