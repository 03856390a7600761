// Package motion implements the player character motion controller:
// smoothed ground locomotion, a timed dash with direction fallback, and
// pointer-driven body facing. The controller owns no scene access of its
// own; every host capability is injected through the interfaces below.
package motion

import "github.com/duskfall/stride/pkg/math"

// InputSource supplies player intent captured for the current step.
type InputSource interface {
	// MoveAxis returns the horizontal input direction, normalized,
	// zero when idle. X is the right axis, Y the back axis.
	MoveAxis() math.Vec2
	// DashJustPressed reports an edge-triggered dash press.
	DashJustPressed() bool
}

// Collision describes a blocked move reported by the physics backend.
type Collision struct {
	Position math.Vec3 // actor position after the truncated move
	Normal   math.Vec3 // surface normal at the contact
}

// Body is the physics-backed actor the controller drives.
type Body interface {
	Position() math.Vec3
	SetPosition(math.Vec3)

	// Facing returns the body's forward direction in world space.
	Facing() math.Vec3
	// LookAtHorizontal yaws the body toward target around the vertical
	// axis. The implementation must ignore targets coincident with the
	// body position.
	LookAtHorizontal(target math.Vec3)

	// MoveAndSlide integrates velocity over dt, resolves collisions by
	// sliding, updates the floor flag, and returns the post-slide
	// velocity for the controller to commit.
	MoveAndSlide(velocity math.Vec3, dt float32) math.Vec3
	// MoveAndCollide translates by motion and stops at the first
	// contact, keeping safeMargin of separation. It does not slide.
	MoveAndCollide(motion math.Vec3, safeMargin float32) (Collision, bool)

	IsOnFloor() bool
	GravityVector() math.Vec3
}

// AimArm is the camera arm whose collision mask is dropped for the
// duration of a dash so the arm cannot clip into geometry.
type AimArm interface {
	CollisionMask() uint32
	SetCollisionMask(uint32)
}

// CameraRig projects pointer coordinates into world-space rays.
type CameraRig interface {
	// Active reports whether the rig can project rays this frame.
	Active() bool
	PointerPosition() math.Vec2
	ProjectRayOrigin(screen math.Vec2) math.Vec3
	ProjectRayDirection(screen math.Vec2) math.Vec3
}

// WorldCaster answers ray queries against world geometry.
type WorldCaster interface {
	// CastRay returns the nearest hit point between from and to.
	CastRay(from, to math.Vec3) (math.Vec3, bool)
}
