package motion

import "github.com/duskfall/stride/pkg/math"

// startDash enters the dash state: locks the current height, disables
// the aim arm's collision mask (saving it for restore), resolves the
// dash direction and discards any vertical velocity.
func (c *Controller) startDash(inputDir math.Vec3) {
	c.state.dashing = true
	c.state.dashElapsed = 0
	c.state.dashStartY = c.body.Position().Y

	c.state.savedAimMask = c.arm.CollisionMask()
	c.arm.SetCollisionMask(0)

	c.state.dashDir = c.resolveDashDir(inputDir)
	c.state.velocity.Y = 0
}

// resolveDashDir picks the dash direction from an ordered candidate
// chain; the first non-zero candidate wins. The winner's vertical
// component is zeroed without renormalizing, so a pitched facing yields
// a proportionally shorter dash. When every candidate is degenerate the
// dash runs with a zero direction and simply times out in place.
func (c *Controller) resolveDashDir(inputDir math.Vec3) math.Vec3 {
	candidates := []func() math.Vec3{
		func() math.Vec3 { return inputDir },
		func() math.Vec3 { return c.state.lastMoveDir },
		func() math.Vec3 {
			h := c.state.velocity.Horizontal()
			if h.Length() <= minDashVelocity {
				return math.Vec3{}
			}
			return h.Normalize()
		},
		func() math.Vec3 { return c.body.Facing() },
	}

	for _, candidate := range candidates {
		if dir := candidate(); !dir.IsZero() {
			return dir.Horizontal()
		}
	}
	return math.Vec3{}
}

// dashStep advances one physics step of an active dash: re-locks the
// height, translates along the dash direction with a collide-and-report
// move, and ends the dash on contact or timeout.
func (c *Controller) dashStep(dt float32) {
	c.state.dashElapsed += dt

	// Hard vertical lock every step; the resolver must not sink or
	// snap the body while dashing.
	pos := c.body.Position()
	c.body.SetPosition(pos.WithY(c.state.dashStartY))

	step := c.state.dashDir.Scale(c.tuning.DashSpeed * dt)
	if _, hit := c.body.MoveAndCollide(step, c.tuning.DashSafeMargin); hit {
		c.endDash()
		return
	}

	if c.state.dashElapsed >= c.tuning.DashDuration {
		c.endDash()
	}
}

// endDash leaves the dash state. Horizontal velocity is dropped so the
// burst does not carry over; vertical velocity is kept so falling
// resumes naturally. The aim arm gets its saved mask back.
func (c *Controller) endDash() {
	c.state.dashing = false
	c.state.velocity.X = 0
	c.state.velocity.Z = 0
	c.arm.SetCollisionMask(c.state.savedAimMask)
}
