package motion

import "github.com/duskfall/stride/pkg/math"

// Controller is the per-frame motion controller for the player body.
// PhysicsStep runs once per fixed physics step and owns movement;
// FrameStep runs once per rendered frame and owns pointer facing.
// Both run on the same goroutine.
type Controller struct {
	input  InputSource
	body   Body
	arm    AimArm
	camera CameraRig
	world  WorldCaster

	tuning Tuning
	state  state
}

// state is the single motion state record. dashing is the discriminant:
// while set, the dash fields drive movement and the locomotion fields
// are frozen.
type state struct {
	dashing     bool
	dashElapsed float32
	dashDir     math.Vec3 // horizontal, fixed for the dash
	dashStartY  float32   // vertical lock while dashing

	lastMoveDir  math.Vec3 // last non-zero input direction, never decays
	velocity     math.Vec3
	savedAimMask uint32 // arm mask to restore when the dash ends
}

// New creates a controller with default tuning. camera and world may be
// nil; facing updates are skipped until both are available.
func New(input InputSource, body Body, arm AimArm, camera CameraRig, world WorldCaster) *Controller {
	return &Controller{
		input:  input,
		body:   body,
		arm:    arm,
		camera: camera,
		world:  world,
		tuning: DefaultTuning(),
	}
}

// SetTuning replaces the movement feel knobs. Call from the game loop
// goroutine only.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
}

// Tuning returns the active movement feel knobs.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// IsDashing reports whether a dash is in progress.
func (c *Controller) IsDashing() bool {
	return c.state.dashing
}

// Velocity returns the current velocity.
func (c *Controller) Velocity() math.Vec3 {
	return c.state.velocity
}

// PhysicsStep advances movement by one fixed physics step. While a dash
// is active it exclusively drives motion; locomotion, gravity and dash
// triggering are all skipped for the step.
func (c *Controller) PhysicsStep(dt float32) {
	axis := c.input.MoveAxis()
	inputDir := math.Vec3{X: axis.X, Z: axis.Y}

	if c.state.dashing {
		c.dashStep(dt)
		return
	}

	if !inputDir.IsZero() {
		c.state.lastMoveDir = inputDir
	}

	c.locomotionStep(inputDir, dt)

	if c.input.DashJustPressed() {
		c.startDash(inputDir)
	}
}

// locomotionStep integrates gravity when airborne, ramps the horizontal
// velocity toward the input target with a clamped linear approach, and
// commits the slide-resolved result.
func (c *Controller) locomotionStep(inputDir math.Vec3, dt float32) {
	if !c.body.IsOnFloor() {
		c.state.velocity = c.state.velocity.Add(c.body.GravityVector().Scale(dt))
	}

	var target math.Vec3
	rate := c.tuning.Deceleration
	if !inputDir.IsZero() {
		target = inputDir.Scale(c.tuning.WalkSpeed)
		rate = c.tuning.Acceleration
	}

	c.state.velocity.X = math.MoveToward(c.state.velocity.X, target.X, rate*dt)
	c.state.velocity.Z = math.MoveToward(c.state.velocity.Z, target.Z, rate*dt)

	c.state.velocity = c.body.MoveAndSlide(c.state.velocity, dt)
}
