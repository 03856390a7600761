// Package picking provides ray casting utilities for pointer targeting
// and world queries.
package picking

import (
	gomath "math"

	"github.com/duskfall/stride/pkg/math"
)

// Ray is a half-line in world space. Dir is expected to be normalized.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// ScreenToRay converts screen pixel coordinates to a world-space ray.
// invViewProj is the inverse of the camera's view-projection matrix.
func ScreenToRay(screen math.Vec2, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screen.X/viewportW - 1.0
	ndcY := 1.0 - 2.0*screen.Y/viewportH // flip Y

	near := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	far := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	if near[3] != 0 {
		near[0] /= near[3]
		near[1] /= near[3]
		near[2] /= near[3]
	}
	if far[3] != 0 {
		far[0] /= far[3]
		far[1] /= far[3]
		far[2] /= far[3]
	}

	origin := math.Vec3{X: near[0], Y: near[1], Z: near[2]}
	dir := math.Vec3{X: far[0] - near[0], Y: far[1] - near[1], Z: far[2] - near[2]}
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// IntersectPlaneY intersects the ray with a horizontal plane at the given
// Y level. Returns false for rays parallel to the plane or intersections
// behind the origin.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	// Solve Origin.Y + t*Dir.Y = planeY.
	if gomath.Abs(float64(r.Dir.Y)) < 0.001 {
		return math.Vec3{}, false
	}

	t := (planeY - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests the ray against an axis-aligned bounding box using
// the slab method. Returns the entry distance, or the exit distance when
// the ray starts inside the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(gomath.Inf(-1))
	tmax := float32(gomath.Inf(1))

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
