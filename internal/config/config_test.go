package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Movement.WalkSpeed != 10 {
		t.Errorf("expected walk speed 10, got %v", cfg.Movement.WalkSpeed)
	}
	if cfg.Movement.DashSpeed != 30 {
		t.Errorf("expected dash speed 30, got %v", cfg.Movement.DashSpeed)
	}
	if cfg.Movement.DashDuration != 300*time.Millisecond {
		t.Errorf("expected dash duration 300ms, got %v", cfg.Movement.DashDuration)
	}

	if cfg.Sim.PhysicsHz != 60 {
		t.Errorf("expected 60Hz physics, got %d", cfg.Sim.PhysicsHz)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

movement:
  walk_speed: 12
  dash_speed: 45
  dash_duration: 250ms

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("window size = %dx%d, want 1920x1080", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("fullscreen not applied")
	}
	if cfg.Movement.WalkSpeed != 12 {
		t.Errorf("walk speed = %v, want 12", cfg.Movement.WalkSpeed)
	}
	if cfg.Movement.DashDuration != 250*time.Millisecond {
		t.Errorf("dash duration = %v, want 250ms", cfg.Movement.DashDuration)
	}
	// Unspecified values keep their defaults.
	if cfg.Movement.Acceleration != 40 {
		t.Errorf("acceleration = %v, want default 40", cfg.Movement.Acceleration)
	}
	if cfg.Sim.PhysicsHz != 60 {
		t.Errorf("physics hz = %v, want default 60", cfg.Sim.PhysicsHz)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestTuningConversion(t *testing.T) {
	m := MovementConfig{
		WalkSpeed:    12,
		DashSpeed:    45,
		DashDuration: 250 * time.Millisecond,
		Acceleration: 50,
		Deceleration: 20,
	}
	tuning := m.Tuning()

	if tuning.WalkSpeed != 12 || tuning.DashSpeed != 45 {
		t.Errorf("speeds = %v/%v, want 12/45", tuning.WalkSpeed, tuning.DashSpeed)
	}
	if tuning.DashDuration < 0.249 || tuning.DashDuration > 0.251 {
		t.Errorf("dash duration = %v, want 0.25", tuning.DashDuration)
	}

	// Zeroed knobs fall back to compiled-in constants.
	empty := MovementConfig{}.Tuning()
	if empty.WalkSpeed != 10 || empty.Acceleration != 40 {
		t.Errorf("empty config tuning = %+v, want defaults", empty)
	}
	if empty.AimRayLength != 2000 {
		t.Errorf("aim ray length = %v, want 2000", empty.AimRayLength)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Movement.WalkSpeed = 17
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Movement.WalkSpeed != 17 {
		t.Errorf("reloaded walk speed = %v, want 17", loaded.Movement.WalkSpeed)
	}
}
