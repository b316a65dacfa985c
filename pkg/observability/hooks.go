// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages never import a logger or metrics backend. Instead they
// report events through the hooks registered here, and the binary decides
// what to do with them. The dash CLI registers logger-backed hooks; tests
// and embedders get no-op hooks unless they register their own.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDocumentHooks(&myDocumentHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... decode ...
//	observability.Document().OnLoad(ctx, len(data), nodes, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from document loading and saving.
type DocumentHooks interface {
	// OnLoad records a decode of JSON bytes into a view tree. nodes is the
	// size of the decoded tree, or 0 when err is non-nil.
	OnLoad(ctx context.Context, size, nodes int, duration time.Duration, err error)

	// OnSave records an encode of a view tree into JSON bytes.
	OnSave(ctx context.Context, size, nodes int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from document storage backends.
type StoreHooks interface {
	// OnGet records a document read. found is false for missing documents.
	OnGet(ctx context.Context, backend, name string, found bool, duration time.Duration)

	// OnPut records a document write.
	OnPut(ctx context.Context, backend, name string, size int, duration time.Duration, err error)

	// OnDelete records a document removal.
	OnDelete(ctx context.Context, backend, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnLoad(context.Context, int, int, time.Duration, error) {}
func (NoopDocumentHooks) OnSave(context.Context, int, int, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnGet(context.Context, string, string, bool, time.Duration)       {}
func (NoopStoreHooks) OnPut(context.Context, string, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnDelete(context.Context, string, string, time.Duration, error)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	documentHooks DocumentHooks = NoopDocumentHooks{}
	storeHooks    StoreHooks    = NoopStoreHooks{}
	hooksMu       sync.RWMutex
)

// SetDocumentHooks registers custom document hooks.
// This should be called once at application startup before any documents are loaded.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store is opened.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	documentHooks = NoopDocumentHooks{}
	storeHooks = NoopStoreHooks{}
}
