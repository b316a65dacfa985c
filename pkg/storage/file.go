package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dashdoc/dash/pkg/document"
	dasherrors "github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/observability"
)

// FileStore keeps each document as a bundle directory: <dir>/<name>.dash
// holding contents.json.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
// If dir is empty, defaults to ~/.local/share/dash/documents.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "share", "dash", "documents")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageError(err, "create store dir")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the bundles.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) bundlePath(name string) string {
	return filepath.Join(s.dir, name+document.BundleExt)
}

// Get reads <name>.dash/contents.json.
func (s *FileStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := dasherrors.ValidateName(name); err != nil {
		return nil, err
	}
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.bundlePath(name), document.ContentsFile))
	if errors.Is(err, fs.ErrNotExist) {
		observability.Store().OnGet(ctx, "file", name, false, time.Since(start))
		return nil, notFound(name)
	}
	if err != nil {
		return nil, storageError(err, "read %s", name)
	}
	observability.Store().OnGet(ctx, "file", name, true, time.Since(start))
	return data, nil
}

// Put writes <name>.dash/contents.json. Other files in the bundle are kept.
func (s *FileStore) Put(ctx context.Context, name string, data []byte) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	err := document.WriteContents(s.bundlePath(name), data)
	if err != nil {
		err = storageError(err, "write %s", name)
	}
	observability.Store().OnPut(ctx, "file", name, len(data), time.Since(start), err)
	return err
}

// Delete removes the whole bundle directory.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.bundlePath(name)
	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = notFound(name)
	} else if rmErr := os.RemoveAll(path); rmErr != nil {
		err = storageError(rmErr, "delete %s", name)
	}
	observability.Store().OnDelete(ctx, "file", name, time.Since(start), err)
	return err
}

// List returns the names of bundles that hold a contents.json.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, storageError(err, "list %s", s.dir)
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), document.BundleExt)
		if !ok || !e.IsDir() || dasherrors.ValidateName(name) != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.dir, e.Name(), document.ContentsFile)); err != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
