// Package world provides the reference collision world the motion
// controller runs against: a flat ground plane plus static box
// colliders, with ray queries for pointer targeting.
package world

import (
	"github.com/duskfall/stride/internal/engine/picking"
	"github.com/duskfall/stride/pkg/math"
)

// DefaultGravity is the downward acceleration in units per second squared.
const DefaultGravity = 9.8

// World holds static collision geometry.
type World struct {
	Gravity math.Vec3
	FloorY  float32 // ground plane height

	boxes []picking.AABB
}

// New creates an empty world with a ground plane at Y=0.
func New() *World {
	return &World{
		Gravity: math.Vec3{Y: -DefaultGravity},
	}
}

// AddBox adds a static box collider.
func (w *World) AddBox(box picking.AABB) {
	w.boxes = append(w.boxes, box)
}

// Boxes returns the static colliders.
func (w *World) Boxes() []picking.AABB {
	return w.boxes
}

// CastRay returns the nearest collider hit between from and to. The
// ground plane is not part of the query; callers fall back to a plane
// intersection themselves when nothing is hit.
func (w *World) CastRay(from, to math.Vec3) (math.Vec3, bool) {
	seg := to.Sub(from)
	maxDist := seg.Length()
	if maxDist == 0 {
		return math.Vec3{}, false
	}
	ray := picking.Ray{Origin: from, Dir: seg.Scale(1 / maxDist)}

	nearest := maxDist
	found := false
	for _, box := range w.boxes {
		if t, hit := ray.IntersectAABB(box); hit && t <= nearest {
			nearest = t
			found = true
		}
	}
	if !found {
		return math.Vec3{}, false
	}
	return ray.At(nearest), true
}
