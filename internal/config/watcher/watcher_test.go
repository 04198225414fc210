package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/sodiumview/internal/config"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sodium.toml")
	if err := os.WriteFile(path, []byte("[display]\nline_marker = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	updates := make(chan Update, 4)
	w, err := New(path, func(u Update) { updates <- u }, WithDebounce(20*time.Millisecond),
		WithLoader(config.Load))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[display]\nline_marker = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case u := <-updates:
		if u.Err != nil {
			t.Fatalf("reload failed: %v", u.Err)
		}
		if !u.Config.Display.LineMarker {
			t.Error("reloaded config should have line marker enabled")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sodium.toml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	updates := make(chan Update, 4)
	w, err := New(path, func(u Update) { updates <- u }, WithDebounce(20*time.Millisecond),
		WithLoader(config.Load))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[display\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case u := <-updates:
		var pe *config.ParseError
		if !errors.As(u.Err, &pe) {
			t.Errorf("error = %v, want *config.ParseError", u.Err)
		}
		if u.Config != nil {
			t.Error("failed reload should not carry a config")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sodium.toml")

	updates := make(chan Update, 4)
	w, err := New(path, func(u Update) { updates <- u }, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case u := <-updates:
		t.Errorf("unexpected update %+v", u)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "sodium.toml"), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if w.Path() == "" || !filepath.IsAbs(w.Path()) {
		t.Errorf("Path() = %q, want absolute path", w.Path())
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close error = %v, want ErrWatcherClosed", err)
	}
}
