package camera

import (
	"testing"

	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

func TestCenterRayPointsAtTarget(t *testing.T) {
	c := NewFollowCamera(1280, 720)
	c.Follow(math.Vec3{X: 3, Y: 1, Z: -2})

	center := math.Vec2{X: 640, Y: 360}
	origin := c.ProjectRayOrigin(center)
	dir := c.ProjectRayDirection(center)

	want := c.Target.Sub(c.Position()).Normalize()
	if dir.Sub(want).Length() > 0.01 {
		t.Errorf("center ray dir = %v, want %v", dir, want)
	}
	// Origin sits on the near plane in front of the eye.
	if origin.Distance(c.Position()) > c.Near*2 {
		t.Errorf("ray origin %v too far from eye %v", origin, c.Position())
	}
}

func TestPointerRayHitsGroundUnderPointer(t *testing.T) {
	c := NewFollowCamera(800, 600)
	c.Follow(math.Vec3{})

	// Pointer below the viewport center: the ray must strike the
	// ground in front of the camera.
	p := math.Vec2{X: 400, Y: 450}
	ray := picking.Ray{Origin: c.ProjectRayOrigin(p), Dir: c.ProjectRayDirection(p)}

	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		t.Fatal("pointer ray must reach the ground plane")
	}
	if hit.Y < -0.001 || hit.Y > 0.001 {
		t.Errorf("hit.Y = %v, want on plane", hit.Y)
	}
}

func TestInactiveWithoutViewport(t *testing.T) {
	c := &FollowCamera{}
	if c.Active() {
		t.Error("camera without viewport must be inactive")
	}
	var nilCam *FollowCamera
	if nilCam.Active() {
		t.Error("nil camera must be inactive")
	}
}

func TestArmMaskRoundTrip(t *testing.T) {
	a := NewArm()
	if a.CollisionMask() != DefaultArmMask {
		t.Fatalf("default mask = %v, want %v", a.CollisionMask(), DefaultArmMask)
	}
	a.SetCollisionMask(0)
	if a.CollisionMask() != 0 {
		t.Error("mask not cleared")
	}
	a.SetCollisionMask(0b11)
	if a.CollisionMask() != 0b11 {
		t.Error("mask not restored")
	}
}
