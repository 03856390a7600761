package game

import (
	"testing"

	"github.com/duskfall/stride/internal/config"
	"github.com/duskfall/stride/pkg/math"
)

func TestHeadlessGameSimulates(t *testing.T) {
	cfg := config.Default()
	g, err := New(cfg, Options{Headless: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	start := g.actor.Position()

	// Drive a couple of simulated seconds by hand: autopilot input,
	// fixed physics steps, per-frame facing.
	for i := 0; i < 120; i++ {
		g.pilot.Advance(g.stepDt)
		g.controller.PhysicsStep(g.stepDt)
		g.cam.Follow(g.actor.Position())
		g.controller.FrameStep()
	}

	if g.actor.Position().Distance(start) < 1 {
		t.Error("autopilot did not move the actor")
	}
	if pos := g.actor.Position(); pos.Y < 0.99 || pos.Y > 1.01 {
		t.Errorf("actor left the ground, Y = %v", pos.Y)
	}
}

func TestHeadlessDashTriggersAndRestoresMask(t *testing.T) {
	cfg := config.Default()
	g, err := New(cfg, Options{Headless: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	maskBefore := g.arm.CollisionMask()
	sawDash := false

	for i := 0; i < 600; i++ {
		g.pilot.Advance(g.stepDt)
		g.controller.PhysicsStep(g.stepDt)
		if g.controller.IsDashing() {
			sawDash = true
			if g.arm.CollisionMask() != 0 {
				t.Fatal("arm mask not dropped during dash")
			}
		}
	}

	if !sawDash {
		t.Fatal("autopilot never dashed in 10 simulated seconds")
	}
	if g.controller.IsDashing() {
		// Walk out the remaining dash so the mask check below holds.
		for g.controller.IsDashing() {
			g.controller.PhysicsStep(g.stepDt)
		}
	}
	if g.arm.CollisionMask() != maskBefore {
		t.Errorf("arm mask = %v, want restored %v", g.arm.CollisionMask(), maskBefore)
	}
}

func TestAutopilotHeadings(t *testing.T) {
	p := newAutopilot(800, 600)

	first := p.MoveAxis()
	if first != (math.Vec2{X: 1}) {
		t.Errorf("initial heading = %v, want +X", first)
	}

	p.Advance(pilotTurnInterval + 0.01)
	if p.MoveAxis() == first {
		t.Error("heading did not change after the turn interval")
	}
}

func TestAutopilotDashFiresOnce(t *testing.T) {
	p := newAutopilot(800, 600)

	p.Advance(pilotDashInterval + 0.01)
	if !p.DashJustPressed() {
		t.Fatal("dash not pressed after interval")
	}
	if p.DashJustPressed() {
		t.Error("dash press repeated without a new interval")
	}
}

func TestTuningReloadApplies(t *testing.T) {
	cfg := config.Default()
	g, err := New(cfg, Options{Headless: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	updated := config.Default()
	updated.Movement.WalkSpeed = 21
	ch := make(chan *config.Config, 1)
	ch <- updated
	g.WatchTuning(ch)

	g.applyPendingTuning()

	if got := g.controller.Tuning().WalkSpeed; got != 21 {
		t.Errorf("walk speed after reload = %v, want 21", got)
	}
}
