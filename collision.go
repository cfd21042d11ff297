package roomwalk

import (
	"github.com/akmonengine/roomwalk/actor"
)

// Result describes the outcome of a collision query
type Result struct {
	Collided   bool
	CorrectedX float64
	CorrectedZ float64
	// CollidedWith is the ID of the first obstacle hit, empty when Collided is false
	CollidedWith string
}

// CheckCollision checks a move from (currentX, currentZ) to (newX, newZ) for a character of the given radius.
// The first obstacle, in registration order, overlapping the destination is reported and the move
// is resolved by sliding. Inputs are not validated: NaN coordinates never collide.
func (w *World) CheckCollision(currentX, currentZ, newX, newZ, radius float64) Result {
	for _, obstacle := range w.obstacles {
		if obstacle.Intersects(newX-radius, newX+radius, newZ-radius, newZ+radius) {
			return w.resolveSliding(currentX, currentZ, newX, newZ, radius, obstacle)
		}
	}

	return Result{
		Collided:   false,
		CorrectedX: newX,
		CorrectedZ: newZ,
	}
}

// CheckCollisionDefault is CheckCollision with actor.DefaultRadius
func (w *World) CheckCollisionDefault(currentX, currentZ, newX, newZ float64) Result {
	return w.CheckCollision(currentX, currentZ, newX, newZ, actor.DefaultRadius)
}

// resolveSliding keeps as much of a blocked move as possible: first the X component alone,
// then the Z component alone, otherwise the character stays where it is.
// Each partial move is tested against every obstacle, not only the one that was hit,
// so sliding along one box never pushes the character into another.
func (w *World) resolveSliding(currentX, currentZ, newX, newZ, radius float64, hit actor.Obstacle) Result {
	result := Result{
		Collided:     true,
		CorrectedX:   currentX,
		CorrectedZ:   currentZ,
		CollidedWith: hit.ID,
	}

	if !w.isBlocked(newX, currentZ, radius) {
		result.CorrectedX = newX
		return result
	}

	if !w.isBlocked(currentX, newZ, radius) {
		result.CorrectedZ = newZ
		return result
	}

	return result
}

// isBlocked checks whether a character centered on (x, z) overlaps any obstacle
func (w *World) isBlocked(x, z, radius float64) bool {
	for _, obstacle := range w.obstacles {
		if obstacle.Intersects(x-radius, x+radius, z-radius, z+radius) {
			return true
		}
	}

	return false
}
