// Package camera provides the follow camera rig and its collision arm.
package camera

import (
	gomath "math"

	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

// FollowCamera orbits a followed point at a fixed pitch and distance and
// projects pointer coordinates into world-space rays.
type FollowCamera struct {
	Target   math.Vec3 // followed point, usually the player body
	Distance float32
	Pitch    float32 // radians above the horizon
	Yaw      float32 // radians around the vertical axis

	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32

	viewportW float32
	viewportH float32

	pointer math.Vec2
}

// NewFollowCamera creates a camera with default framing for the given
// viewport size.
func NewFollowCamera(viewportW, viewportH int) *FollowCamera {
	c := &FollowCamera{
		Distance: 12.0,
		Pitch:    0.9,
		FOV:      float32(gomath.Pi / 4),
		Near:     0.1,
		Far:      4000.0,
	}
	c.SetViewport(viewportW, viewportH)
	return c
}

// SetViewport updates the viewport dimensions after a window resize.
func (c *FollowCamera) SetViewport(w, h int) {
	c.viewportW = float32(w)
	c.viewportH = float32(h)
}

// Follow re-centers the camera on the given point.
func (c *FollowCamera) Follow(target math.Vec3) {
	c.Target = target
}

// SetPointer records the pointer's screen position for this frame.
func (c *FollowCamera) SetPointer(p math.Vec2) {
	c.pointer = p
}

// Active reports whether the camera can project rays.
func (c *FollowCamera) Active() bool {
	return c != nil && c.viewportW > 0 && c.viewportH > 0
}

// PointerPosition returns the pointer's screen position.
func (c *FollowCamera) PointerPosition() math.Vec2 {
	return c.pointer
}

// Position returns the camera eye position in world space.
func (c *FollowCamera) Position() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	offset := math.Vec3{
		X: c.Distance * cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * cp * float32(gomath.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FollowCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *FollowCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.viewportW/c.viewportH, c.Near, c.Far)
}

// ProjectRayOrigin returns the world-space origin of the ray through the
// given screen position.
func (c *FollowCamera) ProjectRayOrigin(screen math.Vec2) math.Vec3 {
	return c.screenRay(screen).Origin
}

// ProjectRayDirection returns the normalized world-space direction of
// the ray through the given screen position.
func (c *FollowCamera) ProjectRayDirection(screen math.Vec2) math.Vec3 {
	return c.screenRay(screen).Dir
}

func (c *FollowCamera) screenRay(screen math.Vec2) picking.Ray {
	invViewProj := c.ProjectionMatrix().Mul(c.ViewMatrix()).Inverse()
	return picking.ScreenToRay(screen, c.viewportW, c.viewportH, invViewProj)
}
