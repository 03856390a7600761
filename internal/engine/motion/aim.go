package motion

import (
	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

// FrameStep re-orients the body toward the pointer. It runs once per
// rendered frame, independent of physics stepping, and reads whatever
// transform the last physics step committed.
func (c *Controller) FrameStep() {
	if c.body == nil || c.camera == nil || !c.camera.Active() {
		return
	}

	pointer := c.camera.PointerPosition()
	ray := picking.Ray{
		Origin: c.camera.ProjectRayOrigin(pointer),
		Dir:    c.camera.ProjectRayDirection(pointer),
	}

	bodyY := c.body.Position().Y
	target, ok := c.aimTarget(ray, bodyY)
	if !ok {
		return // nothing under the pointer, keep last facing
	}

	// Facing stays level regardless of where the ray landed.
	c.body.LookAtHorizontal(target.WithY(bodyY))
}

// aimTarget resolves the pointer target: nearest world hit first, then
// the ground plane at the body's height.
func (c *Controller) aimTarget(ray picking.Ray, bodyY float32) (math.Vec3, bool) {
	candidates := []func() (math.Vec3, bool){
		func() (math.Vec3, bool) {
			if c.world == nil {
				return math.Vec3{}, false
			}
			return c.world.CastRay(ray.Origin, ray.At(c.tuning.AimRayLength))
		},
		func() (math.Vec3, bool) {
			return ray.IntersectPlaneY(bodyY)
		},
	}

	for _, candidate := range candidates {
		if p, ok := candidate(); ok {
			return p, true
		}
	}
	return math.Vec3{}, false
}
