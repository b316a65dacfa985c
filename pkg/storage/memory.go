package storage

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	dasherrors "github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/observability"
)

// MemoryStore keeps documents in process memory.
// Useful for testing or for a throwaway server.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Get returns a copy of the stored document.
func (s *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := dasherrors.ValidateName(name); err != nil {
		return nil, err
	}
	start := time.Now()
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()

	observability.Store().OnGet(ctx, "memory", name, ok, time.Since(start))
	if !ok {
		return nil, notFound(name)
	}
	return slices.Clone(data), nil
}

// Put stores a copy of data.
func (s *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	s.mu.Lock()
	s.docs[name] = slices.Clone(data)
	s.mu.Unlock()

	observability.Store().OnPut(ctx, "memory", name, len(data), time.Since(start), nil)
	return nil
}

// Delete removes the document.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	s.mu.Lock()
	_, ok := s.docs[name]
	delete(s.docs, name)
	s.mu.Unlock()

	var err error
	if !ok {
		err = notFound(name)
	}
	observability.Store().OnDelete(ctx, "memory", name, time.Since(start), err)
	return err
}

// List returns the stored names in ascending order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.docs)), nil
}

// Close does nothing.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
