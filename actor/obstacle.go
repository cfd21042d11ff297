package actor

import "github.com/go-gl/mathgl/mgl64"

// Obstacle is a labeled, immovable volume of the room (a wall or a piece of furniture)
type Obstacle struct {
	// ID is unique within a layout and only used for diagnostics
	ID     string
	Bounds AABB
	// IsStatic is always true for now, dynamic obstacles are not supported
	IsStatic bool
}

// NewObstacle creates a static obstacle from its six bounds
func NewObstacle(id string, minX, maxX, minY, maxY, minZ, maxZ float64) Obstacle {
	return Obstacle{
		ID: id,
		Bounds: AABB{
			Min: mgl64.Vec3{minX, minY, minZ},
			Max: mgl64.Vec3{maxX, maxY, maxZ},
		},
		IsStatic: true,
	}
}

// Intersects checks whether the X/Z rectangle of a character overlaps the obstacle footprint
func (o Obstacle) Intersects(minX, maxX, minZ, maxZ float64) bool {
	return o.Bounds.OverlapsXZ(minX, maxX, minZ, maxZ)
}
