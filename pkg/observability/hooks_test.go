package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Document hooks
	d := NoopDocumentHooks{}
	d.OnLoad(ctx, 128, 3, time.Millisecond, nil)
	d.OnLoad(ctx, 12, 0, time.Millisecond, errors.New("missing key"))
	d.OnSave(ctx, 128, 3, time.Millisecond, nil)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnGet(ctx, "file", "welcome", true, time.Millisecond)
	s.OnPut(ctx, "redis", "welcome", 128, time.Millisecond, nil)
	s.OnDelete(ctx, "mongodb", "welcome", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Document() should return NoopDocumentHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customDocument := &testDocumentHooks{}
	SetDocumentHooks(customDocument)
	if Document() != customDocument {
		t.Error("SetDocumentHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	Document().OnLoad(context.Background(), 10, 2, time.Second, nil)
	if customDocument.loads != 1 {
		t.Errorf("loads = %d, want 1", customDocument.loads)
	}

	// Reset and verify
	Reset()
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Reset() should restore NoopDocumentHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDocumentHooks{}
	SetDocumentHooks(custom)

	// Setting nil should be ignored
	SetDocumentHooks(nil)
	SetStoreHooks(nil)

	if Document() != custom {
		t.Error("SetDocumentHooks(nil) should be ignored")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("SetStoreHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDocumentHooks struct {
	NoopDocumentHooks
	loads int
}

func (h *testDocumentHooks) OnLoad(context.Context, int, int, time.Duration, error) { h.loads++ }

type testStoreHooks struct{ NoopStoreHooks }
