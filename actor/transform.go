package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a position in 3D space and a first-person orientation.
// Yaw turns around the Y axis, Pitch tilts the view up and down.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// NewTransform creates a transform at the given position, looking down -Z
func NewTransform(position mgl64.Vec3) Transform {
	return Transform{
		Position: position,
	}
}

// Forward returns the horizontal unit vector the transform is facing
func (t Transform) Forward() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(t.Yaw), 0, -math.Cos(t.Yaw)}
}

// Right returns the horizontal unit vector to the right of Forward
func (t Transform) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(t.Yaw), 0, -math.Sin(t.Yaw)}
}
