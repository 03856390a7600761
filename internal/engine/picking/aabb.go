package picking

import "github.com/duskfall/stride/pkg/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Box creates an AABB from a center point and half-extents.
func Box(center, halfExtents math.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Grow returns the box expanded by half on every side. Sweeping a moving
// box against a static one reduces to a ray against the static box grown
// by the mover's half-extents.
func (b AABB) Grow(half math.Vec3) AABB {
	return AABB{
		Min: b.Min.Sub(half),
		Max: b.Max.Add(half),
	}
}

// Overlaps reports whether the two boxes intersect.
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// Center returns the box's center point.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
