package world

import (
	gomath "math"

	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

func component(v math.Vec3, axis int) float32 {
	switch axis {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

func withComponent(v math.Vec3, axis int, f float32) math.Vec3 {
	switch axis {
	case axisX:
		v.X = f
	case axisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// insideOtherAxes reports whether point p lies strictly inside box on
// the two axes other than axis.
func insideOtherAxes(p math.Vec3, box picking.AABB, axis int) bool {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if component(p, i) <= component(box.Min, i) || component(p, i) >= component(box.Max, i) {
			return false
		}
	}
	return true
}

// sweep intersects a ray with a box using the slab method, additionally
// reporting the normal of the entry face. Rays starting inside the box
// hit immediately with the normal opposing the direction of travel.
func sweep(origin, dir math.Vec3, box picking.AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(gomath.Inf(-1))
	tmax := float32(gomath.Inf(1))
	entryAxis := -1

	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(dir, axis)
		lo := component(box.Min, axis)
		hi := component(box.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return 0, math.Vec3{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = axis
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, math.Vec3{}, false
	}
	if tmin < 0 {
		// Started inside: contact now, pushing back along travel.
		return 0, dir.Scale(-1).Normalize(), true
	}

	normal = withComponent(math.Vec3{}, entryAxis, 1)
	if component(dir, entryAxis) > 0 {
		normal = normal.Scale(-1)
	}
	return tmin, normal, true
}
