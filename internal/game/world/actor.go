package world

import (
	gomath "math"

	"github.com/duskfall/stride/internal/engine/motion"
	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

// floorEpsilon is the contact distance within which the actor counts as
// standing on something.
const floorEpsilon = 0.01

// Actor is a box-shaped kinematic body. Position is the center of its
// collision box; facing is yaw-only, with yaw 0 looking down +Z.
type Actor struct {
	world       *World
	pos         math.Vec3
	halfExtents math.Vec3
	yaw         float32
	onFloor     bool
}

// NewActor places an actor in the world.
func NewActor(w *World, pos, halfExtents math.Vec3) *Actor {
	return &Actor{
		world:       w,
		pos:         pos,
		halfExtents: halfExtents,
	}
}

func (a *Actor) Position() math.Vec3     { return a.pos }
func (a *Actor) SetPosition(p math.Vec3) { a.pos = p }
func (a *Actor) IsOnFloor() bool         { return a.onFloor }

// Yaw returns the facing angle in radians.
func (a *Actor) Yaw() float32 { return a.yaw }

// GravityVector returns the world gravity acceleration.
func (a *Actor) GravityVector() math.Vec3 {
	return a.world.Gravity
}

// Facing returns the forward direction in world space.
func (a *Actor) Facing() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Sin(float64(a.yaw))),
		Z: float32(gomath.Cos(float64(a.yaw))),
	}
}

// LookAtHorizontal yaws the actor toward target around the vertical
// axis. Targets on top of the actor are ignored.
func (a *Actor) LookAtHorizontal(target math.Vec3) {
	d := target.Sub(a.pos)
	if d.XZ().LengthSquared() < 1e-9 {
		return
	}
	a.yaw = float32(gomath.Atan2(float64(d.X), float64(d.Z)))
}

// MoveAndSlide integrates velocity over dt, resolving each axis
// separately so the actor slides along obstacles. Velocity components
// that hit something are zeroed in the returned value. The floor flag
// is refreshed as a side effect.
func (a *Actor) MoveAndSlide(velocity math.Vec3, dt float32) math.Vec3 {
	out := velocity
	// Horizontal axes first, then vertical, so walking into a wall
	// while falling still lands cleanly.
	for _, axis := range [3]int{axisX, axisZ, axisY} {
		delta := component(velocity, axis) * dt
		if delta == 0 {
			continue
		}
		moved, blocked := a.slideAxis(axis, delta)
		a.pos = withComponent(a.pos, axis, component(a.pos, axis)+moved)
		if blocked {
			out = withComponent(out, axis, 0)
		}
	}
	a.updateFloorFlag()
	return out
}

// MoveAndCollide translates the actor along motion, stopping at the
// first contact with safeMargin of separation. Unlike MoveAndSlide it
// reports the contact instead of sliding along it.
func (a *Actor) MoveAndCollide(motionVec math.Vec3, safeMargin float32) (motion.Collision, bool) {
	dist := motionVec.Length()
	if dist == 0 {
		return motion.Collision{}, false
	}
	dir := motionVec.Scale(1 / dist)

	nearest := dist
	var normal math.Vec3
	hit := false
	for _, box := range a.world.boxes {
		expanded := box.Grow(a.halfExtents)
		if t, n, ok := sweep(a.pos, dir, expanded); ok && t <= nearest {
			nearest = t
			normal = n
			hit = true
		}
	}

	// Ground plane counts as a contact when moving down.
	if dir.Y < 0 {
		floorLimit := a.world.FloorY + a.halfExtents.Y
		if t := (floorLimit - a.pos.Y) / dir.Y; t >= 0 && t <= nearest {
			nearest = t
			normal = math.Up
			hit = true
		}
	}

	if !hit {
		a.pos = a.pos.Add(motionVec)
		return motion.Collision{}, false
	}

	travel := nearest - safeMargin
	if travel < 0 {
		travel = 0
	}
	a.pos = a.pos.Add(dir.Scale(travel))
	return motion.Collision{Position: a.pos, Normal: normal}, true
}

// slideAxis moves the actor's center along one axis, clamping against
// colliders and the ground plane. Returns the movement actually
// performed and whether something blocked it.
func (a *Actor) slideAxis(axis int, delta float32) (moved float32, blocked bool) {
	moved = delta
	p := a.pos

	for _, box := range a.world.boxes {
		expanded := box.Grow(a.halfExtents)
		if !insideOtherAxes(p, expanded, axis) {
			continue
		}
		cur := component(p, axis)
		if delta > 0 {
			face := component(expanded.Min, axis)
			if cur <= face && cur+moved > face {
				moved = face - cur
				blocked = true
			}
		} else {
			face := component(expanded.Max, axis)
			if cur >= face && cur+moved < face {
				moved = face - cur
				blocked = true
			}
		}
	}

	if axis == axisY && delta < 0 {
		floorLimit := a.world.FloorY + a.halfExtents.Y
		if p.Y+moved < floorLimit {
			moved = floorLimit - p.Y
			blocked = true
		}
	}
	return moved, blocked
}

// updateFloorFlag marks the actor grounded when its underside rests on
// the ground plane or a collider top.
func (a *Actor) updateFloorFlag() {
	bottom := a.pos.Y - a.halfExtents.Y
	if bottom <= a.world.FloorY+floorEpsilon {
		a.onFloor = true
		return
	}

	probe := picking.Box(a.pos.Sub(math.Vec3{Y: floorEpsilon}), a.halfExtents)
	for _, box := range a.world.boxes {
		if probe.Overlaps(box) && a.pos.Y > box.Max.Y {
			a.onFloor = true
			return
		}
	}
	a.onFloor = false
}
