package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultRadius is the horizontal clearance kept between a character and any obstacle
	DefaultRadius = 0.75
	// DefaultSpeed is 0.1 units per frame at 60 frames per second
	DefaultSpeed = 6.0

	MouseSensitivity = 0.002
	BobFrequency     = 8.0
	BobAmplitude     = 0.02
)

// Input holds the movement keys currently held down
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether at least one movement key is held
func (i Input) Any() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

// Character is a first-person walker moving on the floor of the room
type Character struct {
	Id any

	PreviousTransform Transform
	Transform         Transform

	// BaseY is the resting height, the head bob oscillates around it
	BaseY  float64
	Radius float64
	Speed  float64 // units per second

	Input    Input
	IsMoving bool
}

// NewCharacter creates a character standing at position with the default radius and speed
func NewCharacter(position mgl64.Vec3) *Character {
	transform := NewTransform(position)

	return &Character{
		PreviousTransform: transform,
		Transform:         transform,
		BaseY:             position.Y(),
		Radius:            DefaultRadius,
		Speed:             DefaultSpeed,
	}
}

// Look applies a mouse movement (in pixels) to yaw and pitch.
// Pitch is clamped so the view never flips over.
func (c *Character) Look(dx, dy float64) {
	c.Transform.Yaw -= dx * MouseSensitivity
	c.Transform.Pitch -= dy * MouseSensitivity
	c.Transform.Pitch = mgl64.Clamp(c.Transform.Pitch, -math.Pi/2, math.Pi/2)
}

// Displacement returns the horizontal move requested by the held keys over dt, relative to yaw.
// Opposite keys cancel out, diagonals are not normalized.
func (c *Character) Displacement(dt float64) mgl64.Vec3 {
	step := c.Speed * dt
	forward := c.Transform.Forward().Mul(step)
	right := c.Transform.Right().Mul(step)

	direction := mgl64.Vec3{0, 0, 0}
	if c.Input.Forward {
		direction = direction.Add(forward)
	}
	if c.Input.Backward {
		direction = direction.Sub(forward)
	}
	if c.Input.Left {
		direction = direction.Sub(right)
	}
	if c.Input.Right {
		direction = direction.Add(right)
	}

	return direction
}

// MoveTo commits a new horizontal position and updates the walking bob.
// elapsed is the total simulated time, used as the bob phase.
func (c *Character) MoveTo(x, z float64, moving bool, elapsed float64) {
	c.PreviousTransform = c.Transform
	c.IsMoving = moving

	y := c.BaseY
	if moving {
		y += math.Sin(elapsed*BobFrequency) * BobAmplitude
	}
	c.Transform.Position = mgl64.Vec3{x, y, z}
}
