package roomwalk

import (
	"github.com/akmonengine/roomwalk/actor"
)

const DEFAULT_WORKERS = 1

type World struct {
	// Obstacles of the room, fixed at construction
	obstacles []actor.Obstacle
	// Characters walking in the room, moved on each Step
	Characters []*actor.Character
	Workers    int

	Events Events

	// total simulated time, in seconds
	elapsed float64
}

// NewWorld creates a world around a fixed set of obstacles.
// The slice is copied, later changes made by the caller are not seen by the world.
func NewWorld(obstacles []actor.Obstacle) *World {
	return &World{
		obstacles: append([]actor.Obstacle(nil), obstacles...),
		Workers:   DEFAULT_WORKERS,
		Events:    NewEvents(),
	}
}

// Obstacles returns a copy of the obstacles, in registration order
func (w *World) Obstacles() []actor.Obstacle {
	return append([]actor.Obstacle(nil), w.obstacles...)
}

// Obstacle finds an obstacle by its ID
func (w *World) Obstacle(id string) (actor.Obstacle, bool) {
	for _, o := range w.obstacles {
		if o.ID == id {
			return o, true
		}
	}

	return actor.Obstacle{}, false
}

// Elapsed returns the simulated time accumulated by Step
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// AddCharacter adds a character to the world
func (w *World) AddCharacter(character *actor.Character) {
	w.Characters = append(w.Characters, character)
}

// RemoveCharacter removes a character from the world, dropping its contacts without Exit events
func (w *World) RemoveCharacter(character *actor.Character) {
	k := -1
	for i, c := range w.Characters {
		if c == character {
			k = i
			break
		}
	}

	if k != -1 {
		w.Characters = append(w.Characters[:k], w.Characters[k+1:]...)
	}

	w.Events.forget(character)
}

// Move applies the character's held keys over dt, resolving collisions against the room.
// The character ends up at the corrected position.
func (w *World) Move(character *actor.Character, dt float64) Result {
	position := character.Transform.Position
	displacement := character.Displacement(dt)
	target := position.Add(displacement)

	result := w.CheckCollision(position.X(), position.Z(), target.X(), target.Z(), character.Radius)
	character.MoveTo(result.CorrectedX, result.CorrectedZ, displacement.Len() > 0, w.elapsed)

	return result
}

type move struct {
	character *actor.Character
	result    Result
}

func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	w.elapsed += dt

	moves := make([]*move, len(w.Characters))
	for i, c := range w.Characters {
		moves[i] = &move{character: c}
	}

	// characters only read the obstacles, they can move concurrently
	task(w.Workers, moves, func(m *move) {
		m.result = w.Move(m.character, dt)
	})

	for _, m := range moves {
		if m.result.Collided {
			w.Events.recordContact(m.character, m.result.CollidedWith)
		}
	}

	w.Events.flush(w.Characters)
}
