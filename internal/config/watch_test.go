package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDeliversReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("movement:\n  walk_speed: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("movement:\n  walk_speed: 14\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Events:
		if cfg.Movement.WalkSpeed != 14 {
			t.Errorf("reloaded walk speed = %v, want 14", cfg.Movement.WalkSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	other := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(other, []byte("scratch"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
		t.Error("unrelated file change must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchReportsBadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("movement: ["), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Errors:
	case cfg := <-w.Events:
		t.Errorf("malformed config delivered as event: %+v", cfg)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher error")
	}
}
