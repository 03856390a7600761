// Package game implements the main loop: input polling, fixed-rate
// physics stepping and per-frame facing updates for the motion
// controller.
package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/duskfall/stride/internal/config"
	"github.com/duskfall/stride/internal/engine/camera"
	"github.com/duskfall/stride/internal/engine/input"
	"github.com/duskfall/stride/internal/engine/motion"
	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/internal/engine/window"
	"github.com/duskfall/stride/internal/game/world"
	"github.com/duskfall/stride/internal/logger"
	"github.com/duskfall/stride/pkg/math"
)

// maxFrameDelta caps a frame's simulated time so a long stall cannot
// spiral the physics accumulator.
const maxFrameDelta = 0.25

// framePause is the idle time per frame; there is no renderer to block
// on, so the loop paces itself.
const framePause = 4 * time.Millisecond

// Options selects how the game runs.
type Options struct {
	Headless   bool
	RunSeconds int // headless run length; 0 means run forever
}

// controls abstracts the two input modes: SDL in a window, scripted
// autopilot when headless.
type controls interface {
	motion.InputSource
	PointerPosition() math.Vec2
}

// Game owns the world, the player actor and the loop state.
type Game struct {
	cfg  *config.Config
	opts Options

	window *window.Window
	input  *input.Input
	pilot  *autopilot

	world      *world.World
	actor      *world.Actor
	cam        *camera.FollowCamera
	arm        *camera.Arm
	controller *motion.Controller

	tuningUpdates <-chan *config.Config

	running bool
	stepDt  float32
}

// New wires the world, camera and controller together. In headless mode
// no window is created and a scripted autopilot replaces the keyboard.
func New(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		opts:   opts,
		stepDt: 1.0 / float32(cfg.Sim.PhysicsHz),
	}

	if !opts.Headless {
		win, err := window.New(window.Config{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
		})
		if err != nil {
			return nil, err
		}
		g.window = win
		g.input = input.New(input.DefaultBindings())
	} else {
		g.pilot = newAutopilot(float32(cfg.Window.Width), float32(cfg.Window.Height))
	}

	g.world = buildArena(cfg.Sim.Gravity)
	g.actor = world.NewActor(g.world,
		math.Vec3{Y: 1},
		math.Vec3{X: 0.4, Y: 1, Z: 0.4},
	)
	g.cam = camera.NewFollowCamera(cfg.Window.Width, cfg.Window.Height)
	g.arm = camera.NewArm()

	g.controller = motion.New(g.controls(), g.actor, g.arm, g.cam, g.world)
	g.controller.SetTuning(cfg.Movement.Tuning())

	logger.Info("game initialized",
		zap.Bool("headless", opts.Headless),
		zap.Int("physics_hz", cfg.Sim.PhysicsHz),
	)
	return g, nil
}

func (g *Game) controls() controls {
	if g.input != nil {
		return g.input
	}
	return g.pilot
}

// WatchTuning applies movement tuning from config reloads delivered on ch.
func (g *Game) WatchTuning(ch <-chan *config.Config) {
	g.tuningUpdates = ch
}

// Run drives the loop until quit, or until the headless deadline.
func (g *Game) Run() error {
	g.running = true
	last := time.Now()
	var accumulator float32

	var deadline time.Time
	if g.opts.Headless && g.opts.RunSeconds > 0 {
		deadline = last.Add(time.Duration(g.opts.RunSeconds) * time.Second)
	}

	statusTimer := last
	wasDashing := false

	logger.Info("starting game loop")
	for g.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		if g.input != nil {
			if quit := g.input.Poll(); quit {
				g.running = false
				break
			}
			for _, r := range g.input.Resizes() {
				g.cam.SetViewport(r.Width, r.Height)
			}
		} else {
			g.pilot.Advance(dt)
		}
		g.cam.SetPointer(g.controls().PointerPosition())

		g.applyPendingTuning()

		// Fixed-rate physics, then one facing update per frame.
		accumulator += dt
		for accumulator >= g.stepDt {
			g.controller.PhysicsStep(g.stepDt)
			accumulator -= g.stepDt
		}
		g.cam.Follow(g.actor.Position())
		g.controller.FrameStep()

		if dashing := g.controller.IsDashing(); dashing != wasDashing {
			if dashing {
				logger.Debug("dash started")
			} else {
				logger.Debug("dash ended")
			}
			wasDashing = dashing
		}

		if now.Sub(statusTimer) >= time.Second {
			statusTimer = now
			pos := g.actor.Position()
			logger.Debug("status",
				zap.Float32("x", pos.X),
				zap.Float32("y", pos.Y),
				zap.Float32("z", pos.Z),
				zap.Bool("dashing", g.controller.IsDashing()),
				zap.Bool("on_floor", g.actor.IsOnFloor()),
			)
		}

		if !deadline.IsZero() && now.After(deadline) {
			logger.Info("headless run complete")
			g.running = false
			break
		}
		time.Sleep(framePause)
	}
	return nil
}

// Close releases window resources.
func (g *Game) Close() {
	if g.window != nil {
		g.window.Close()
	}
	logger.Info("game closed")
}

func (g *Game) applyPendingTuning() {
	if g.tuningUpdates == nil {
		return
	}
	select {
	case cfg, ok := <-g.tuningUpdates:
		if !ok {
			g.tuningUpdates = nil
			return
		}
		g.controller.SetTuning(cfg.Movement.Tuning())
		logger.Info("movement tuning reloaded",
			zap.Float32("walk_speed", cfg.Movement.WalkSpeed),
			zap.Float32("dash_speed", cfg.Movement.DashSpeed),
		)
	default:
	}
}

// buildArena assembles the demo level: a ground plane ringed by walls
// with a few pillars to dash against.
func buildArena(gravity float32) *world.World {
	w := world.New()
	if gravity > 0 {
		w.Gravity = math.Vec3{Y: -gravity}
	}

	const half = 40.0
	walls := []struct{ min, max math.Vec3 }{
		{math.Vec3{X: -half, Y: 0, Z: -half - 1}, math.Vec3{X: half, Y: 4, Z: -half}},
		{math.Vec3{X: -half, Y: 0, Z: half}, math.Vec3{X: half, Y: 4, Z: half + 1}},
		{math.Vec3{X: -half - 1, Y: 0, Z: -half}, math.Vec3{X: -half, Y: 4, Z: half}},
		{math.Vec3{X: half, Y: 0, Z: -half}, math.Vec3{X: half + 1, Y: 4, Z: half}},
		// Pillars.
		{math.Vec3{X: 8, Y: 0, Z: 8}, math.Vec3{X: 10, Y: 6, Z: 10}},
		{math.Vec3{X: -12, Y: 0, Z: 6}, math.Vec3{X: -10, Y: 6, Z: 8}},
		{math.Vec3{X: 4, Y: 0, Z: -14}, math.Vec3{X: 6, Y: 6, Z: -12}},
	}
	for _, b := range walls {
		w.AddBox(picking.AABB{Min: b.min, Max: b.max})
	}
	return w
}
