package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDocWatcher(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "board.dash")
	if err := os.MkdirAll(bundle, 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(bundle, "contents.json")
	writeJSON(t, file, `{"type":"PlaceholderView"}`)

	w, err := newDocWatcher(bundle)
	if err != nil {
		t.Fatalf("newDocWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	// Unrelated files in the bundle are ignored.
	writeJSON(t, filepath.Join(bundle, "notes.txt"), "x")
	writeJSON(t, file, `{"type":"Color","color":"#000000"}`)

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after writing the document")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDocWatcherMissingDir(t *testing.T) {
	if _, err := newDocWatcher(filepath.Join(t.TempDir(), "missing", "doc.json")); err == nil {
		t.Error("newDocWatcher on a missing directory succeeded")
	}
}
