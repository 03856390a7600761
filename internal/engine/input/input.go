package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/duskfall/stride/pkg/math"
)

// Bindings maps controller actions to SDL scancodes.
type Bindings struct {
	Left    sdl.Scancode
	Right   sdl.Scancode
	Forward sdl.Scancode
	Back    sdl.Scancode
	Dash    sdl.Scancode
	Quit    sdl.Scancode
}

// DefaultBindings returns WASD movement with space to dash.
func DefaultBindings() Bindings {
	return Bindings{
		Left:    sdl.SCANCODE_A,
		Right:   sdl.SCANCODE_D,
		Forward: sdl.SCANCODE_W,
		Back:    sdl.SCANCODE_S,
		Dash:    sdl.SCANCODE_SPACE,
		Quit:    sdl.SCANCODE_ESCAPE,
	}
}

// Resize describes a window-resize event observed during polling.
type Resize struct {
	Width  int
	Height int
}

// Input polls SDL events and answers the motion controller's queries.
type Input struct {
	state    State
	bindings Bindings
	resizes  []Resize
}

// New creates an input handler with the given bindings.
func New(bindings Bindings) *Input {
	return &Input{bindings: bindings}
}

// Poll drains pending SDL events into the state snapshot. Call once per
// frame before stepping; returns true when the host asked to quit.
func (i *Input) Poll() bool {
	i.state.EndFrame()
	i.resizes = i.resizes[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resizes = append(i.resizes, Resize{
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.state.KeyDown(int(e.Keysym.Scancode))
			} else if e.Type == sdl.KEYUP {
				i.state.KeyUp(int(e.Keysym.Scancode))
			}

		case *sdl.MouseMotionEvent:
			i.state.SetPointer(float32(e.X), float32(e.Y))
		}
	}

	if i.state.JustPressed(int(i.bindings.Quit)) {
		quit = true
	}
	return quit
}

// Resizes returns window resizes observed by the last Poll.
func (i *Input) Resizes() []Resize {
	return i.resizes
}

// MoveAxis returns the normalized horizontal input direction.
func (i *Input) MoveAxis() math.Vec2 {
	b := i.bindings
	return i.state.AxisVector(int(b.Left), int(b.Right), int(b.Forward), int(b.Back))
}

// DashJustPressed reports an edge-triggered dash press. Each press
// fires exactly once regardless of how frames and physics steps align.
func (i *Input) DashJustPressed() bool {
	return i.state.ConsumePress(int(i.bindings.Dash))
}

// PointerPosition returns the pointer's screen position.
func (i *Input) PointerPosition() math.Vec2 {
	return i.state.Pointer()
}
