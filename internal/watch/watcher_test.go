package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsChangedRoot(t *testing.T) {
	root := t.TempDir()

	w, err := NewWithDebounce([]string{root}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(root, "manifest.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != root {
			t.Errorf("Events delivered %q, want %q", got, root)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	root := t.TempDir()

	w, err := NewWithDebounce([]string{root}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce() error: %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		name := filepath.Join(root, "file"+string(rune('a'+i))+".txt")
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	select {
	case <-w.Events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	// The burst should have collapsed into a single notification.
	select {
	case got := <-w.Events:
		t.Errorf("unexpected second event for %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	if err == nil {
		t.Fatal("New() with missing root returned nil error")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := New([]string{t.TempDir()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
