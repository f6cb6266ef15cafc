package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnYAMLChange(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	go func() {
		w.Watch(ctx, func() error {
			select {
			case reloaded <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher time to register before touching the directory.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "default.yaml")
	if err := os.WriteFile(path, []byte("app:\n  name: x\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback not invoked")
	}
}

func TestWatcher_IgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	go func() {
		w.Watch(ctx, func() error {
			select {
			case reloaded <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("scratch"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case <-reloaded:
		t.Fatal("reload triggered by non-YAML file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestIsYAML(t *testing.T) {
	cases := map[string]bool{
		"default.yaml": true,
		"prod.yml":     true,
		"readme.md":    false,
		"config":       false,
	}
	for name, want := range cases {
		if got := isYAML(name); got != want {
			t.Errorf("isYAML(%q) = %v, want %v", name, got, want)
		}
	}
}
