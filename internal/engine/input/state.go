// Package input turns SDL2 events into the axis and action queries the
// motion controller consumes.
package input

import "github.com/duskfall/stride/pkg/math"

// maxKeys bounds the key-state tables; SDL scancodes fit comfortably.
const maxKeys = 512

// State is the per-frame keyboard and pointer snapshot. It is plain
// data with no SDL dependency so the query logic is testable headless.
type State struct {
	held     [maxKeys]bool
	prevHeld [maxKeys]bool
	latched  [maxKeys]bool
	pointer  math.Vec2
}

// KeyDown records a key press. The press is also latched until consumed
// so a fixed-rate physics step cannot miss an edge that landed on a
// frame without a step.
func (s *State) KeyDown(key int) {
	if key >= 0 && key < maxKeys {
		s.held[key] = true
		s.latched[key] = true
	}
}

// KeyUp records a key release.
func (s *State) KeyUp(key int) {
	if key >= 0 && key < maxKeys {
		s.held[key] = false
	}
}

// SetPointer records the pointer's screen position.
func (s *State) SetPointer(x, y float32) {
	s.pointer = math.Vec2{X: x, Y: y}
}

// Pointer returns the pointer's screen position.
func (s *State) Pointer() math.Vec2 {
	return s.pointer
}

// IsHeld reports whether the key is currently down.
func (s *State) IsHeld(key int) bool {
	return key >= 0 && key < maxKeys && s.held[key]
}

// JustPressed reports a press edge: down this frame, up the previous.
func (s *State) JustPressed(key int) bool {
	return key >= 0 && key < maxKeys && s.held[key] && !s.prevHeld[key]
}

// ConsumePress reports a latched press edge and clears it.
func (s *State) ConsumePress(key int) bool {
	if key < 0 || key >= maxKeys || !s.latched[key] {
		return false
	}
	s.latched[key] = false
	return true
}

// AxisVector combines four directional keys into a horizontal input
// vector, clamped to unit length so diagonals are not faster.
func (s *State) AxisVector(left, right, forward, back int) math.Vec2 {
	var v math.Vec2
	if s.IsHeld(right) {
		v.X += 1
	}
	if s.IsHeld(left) {
		v.X -= 1
	}
	if s.IsHeld(back) {
		v.Y += 1
	}
	if s.IsHeld(forward) {
		v.Y -= 1
	}
	if v.LengthSquared() > 1 {
		return v.Normalize()
	}
	return v
}

// EndFrame rolls the current key state into the previous-frame state;
// call once per frame after all queries.
func (s *State) EndFrame() {
	s.prevHeld = s.held
}
