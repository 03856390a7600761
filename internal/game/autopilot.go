package game

import (
	gomath "math"

	"github.com/duskfall/stride/pkg/math"
)

const (
	// pilotTurnInterval is how long the autopilot holds one heading.
	pilotTurnInterval = 2.0
	// pilotDashInterval is how often the autopilot dashes.
	pilotDashInterval = 3.0
	// pilotPointerPeriod is the pointer's orbit time around the screen.
	pilotPointerPeriod = 5.0
)

// autopilot produces scripted input for headless soak runs: it walks a
// square, dashes on a timer and sweeps the pointer in a circle, which
// exercises every controller path without a keyboard.
type autopilot struct {
	elapsed   float32
	sinceDash float32
	dashReady bool

	viewportW float32
	viewportH float32
}

func newAutopilot(viewportW, viewportH float32) *autopilot {
	return &autopilot{viewportW: viewportW, viewportH: viewportH}
}

// Advance moves the script forward by dt seconds.
func (p *autopilot) Advance(dt float32) {
	p.elapsed += dt
	p.sinceDash += dt
	if p.sinceDash >= pilotDashInterval {
		p.sinceDash = 0
		p.dashReady = true
	}
}

// MoveAxis cycles through the four cardinal headings.
func (p *autopilot) MoveAxis() math.Vec2 {
	headings := [4]math.Vec2{
		{X: 1}, {Y: 1}, {X: -1}, {Y: -1},
	}
	return headings[int(p.elapsed/pilotTurnInterval)%4]
}

// DashJustPressed fires once per dash interval.
func (p *autopilot) DashJustPressed() bool {
	pressed := p.dashReady
	p.dashReady = false
	return pressed
}

// PointerPosition orbits the viewport center.
func (p *autopilot) PointerPosition() math.Vec2 {
	angle := float64(p.elapsed) * 2 * gomath.Pi / pilotPointerPeriod
	return math.Vec2{
		X: p.viewportW/2 + p.viewportW/4*float32(gomath.Cos(angle)),
		Y: p.viewportH/2 + p.viewportH/4*float32(gomath.Sin(angle)),
	}
}
