package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Footprint builds the square a character of the given radius covers on the X/Z plane,
// centered on (x, z). The Y extent is left empty: footprints are never tested vertically.
func Footprint(x, z, radius float64) AABB {
	return AABB{
		Min: mgl64.Vec3{x - radius, 0, z - radius},
		Max: mgl64.Vec3{x + radius, 0, z + radius},
	}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// OverlapsXZ checks if the rectangle [minX, maxX] x [minZ, maxZ] intersects the
// projection of the AABB on the horizontal plane.
// Rectangles sharing only a boundary do not overlap, and the Y axis is ignored.
func (a AABB) OverlapsXZ(minX, maxX, minZ, maxZ float64) bool {
	return minX < a.Max.X() && maxX > a.Min.X() &&
		minZ < a.Max.Z() && maxZ > a.Min.Z()
}

// OverlapsFootprint is OverlapsXZ on another box's X/Z bounds.
func (a AABB) OverlapsFootprint(other AABB) bool {
	return a.OverlapsXZ(other.Min.X(), other.Max.X(), other.Min.Z(), other.Max.Z())
}

// IsValid reports whether Min <= Max on every axis.
func (a AABB) IsValid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z()
}
