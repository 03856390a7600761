// Package config handles configuration loading, saving and hot-reload.
package config

import (
	"time"

	"github.com/duskfall/stride/internal/engine/motion"
)

// Config holds all client settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Movement MovementConfig `yaml:"movement"`
	Sim      SimConfig      `yaml:"sim"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// MovementConfig holds the movement feel knobs. Defaults match the
// compiled-in constants in the motion package.
type MovementConfig struct {
	WalkSpeed    float32       `yaml:"walk_speed"`
	DashSpeed    float32       `yaml:"dash_speed"`
	DashDuration time.Duration `yaml:"dash_duration"`
	Acceleration float32       `yaml:"acceleration"`
	Deceleration float32       `yaml:"deceleration"`
}

// SimConfig holds physics stepping settings.
type SimConfig struct {
	PhysicsHz int     `yaml:"physics_hz"`
	Gravity   float32 `yaml:"gravity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "stride",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
		},
		Movement: MovementConfig{
			WalkSpeed:    motion.WalkSpeed,
			DashSpeed:    motion.DashSpeed,
			DashDuration: 300 * time.Millisecond,
			Acceleration: motion.Acceleration,
			Deceleration: motion.Deceleration,
		},
		Sim: SimConfig{
			PhysicsHz: 60,
			Gravity:   9.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Tuning converts the movement settings into controller tuning,
// keeping the compiled-in values for knobs the file does not expose.
func (m MovementConfig) Tuning() motion.Tuning {
	t := motion.DefaultTuning()
	if m.WalkSpeed > 0 {
		t.WalkSpeed = m.WalkSpeed
	}
	if m.DashSpeed > 0 {
		t.DashSpeed = m.DashSpeed
	}
	if m.DashDuration > 0 {
		t.DashDuration = float32(m.DashDuration.Seconds())
	}
	if m.Acceleration > 0 {
		t.Acceleration = m.Acceleration
	}
	if m.Deceleration > 0 {
		t.Deceleration = m.Deceleration
	}
	return t
}
