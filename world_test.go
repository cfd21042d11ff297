package roomwalk

import (
	"testing"

	"github.com/akmonengine/roomwalk/actor"
	"github.com/akmonengine/roomwalk/layout"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewWorld_CopiesObstacles(t *testing.T) {
	obstacles := []actor.Obstacle{actor.NewObstacle("box", 1, 2, 0, 1, -1, 1)}
	world := NewWorld(obstacles)

	obstacles[0] = actor.NewObstacle("moved", 100, 101, 0, 1, 100, 101)
	if world.Obstacles()[0].ID != "box" {
		t.Error("world should not see changes made to the caller's slice")
	}

	copied := world.Obstacles()
	copied[0].ID = "renamed"
	if _, ok := world.Obstacle("box"); !ok {
		t.Error("world should not see changes made to Obstacles() result")
	}
	if _, ok := world.Obstacle("renamed"); ok {
		t.Error("renamed obstacle should not be found")
	}
}

func TestWorld_AddRemoveCharacter(t *testing.T) {
	world := NewWorld(nil)
	a := actor.NewCharacter(mgl64.Vec3{0, 0, 0})
	b := actor.NewCharacter(mgl64.Vec3{1, 0, 0})

	world.AddCharacter(a)
	world.AddCharacter(b)
	if len(world.Characters) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(world.Characters))
	}

	world.RemoveCharacter(a)
	if len(world.Characters) != 1 || world.Characters[0] != b {
		t.Errorf("expected only b to remain, got %v", world.Characters)
	}

	// removing an unknown character is a no-op
	world.RemoveCharacter(a)
	if len(world.Characters) != 1 {
		t.Errorf("expected 1 character, got %d", len(world.Characters))
	}
}

// =============================================================================
// Move Tests
// =============================================================================

func TestWorld_MoveFree(t *testing.T) {
	world := NewWorld(layout.DetectiveOffice())
	c := actor.NewCharacter(mgl64.Vec3{0, 0, -5})
	c.Input.Right = true

	result := world.Move(c, 0.5)

	if result.Collided {
		t.Errorf("unexpected collision with %q", result.CollidedWith)
	}
	if !c.IsMoving {
		t.Error("character should be moving")
	}
	if c.Transform.Position.X() != 3 || c.Transform.Position.Z() != -5 {
		t.Errorf("Position = %v, want [3 _ -5]", c.Transform.Position)
	}
	if c.PreviousTransform.Position.X() != 0 {
		t.Errorf("PreviousTransform should hold the start position, got %v", c.PreviousTransform.Position)
	}
}

func TestWorld_MoveBlockedByWall(t *testing.T) {
	world := NewWorld(layout.DetectiveOffice())
	c := actor.NewCharacter(mgl64.Vec3{-9, 0, 0})
	// facing -X
	c.Transform.Yaw = 1.5707963267948966
	c.Input.Forward = true

	result := world.Move(c, 0.15)

	if !result.Collided || result.CollidedWith != "wall_left" {
		t.Errorf("expected a collision with wall_left, got %+v", result)
	}
	if c.Transform.Position.X() != -9 {
		t.Errorf("character went through the wall: %v", c.Transform.Position)
	}
}

func TestWorld_MoveIgnoresHeight(t *testing.T) {
	world := NewWorld([]actor.Obstacle{actor.NewObstacle("crate", 1, 2, 0, 1, -1, 1)})

	for _, y := range []float64{0, 100} {
		c := actor.NewCharacter(mgl64.Vec3{0, y, 0})
		c.Input.Right = true

		result := world.Move(c, 0.1)
		if !result.Collided {
			t.Errorf("character at Y=%v should be blocked by the crate", y)
		}
	}
}

func TestWorld_MoveStanding(t *testing.T) {
	world := NewWorld(layout.DetectiveOffice())
	c := actor.NewCharacter(mgl64.Vec3{0, 0, -5})

	result := world.Move(c, 1)

	if result.Collided || c.IsMoving {
		t.Errorf("standing character should neither collide nor move, got %+v", result)
	}
	if c.Transform.Position != (mgl64.Vec3{0, 0, -5}) {
		t.Errorf("Position = %v, want [0 0 -5]", c.Transform.Position)
	}
}

// =============================================================================
// Step Tests
// =============================================================================

func TestWorld_StepAccumulatesTime(t *testing.T) {
	world := NewWorld(nil)

	world.Step(0.25)
	world.Step(0.25)

	if world.Elapsed() != 0.5 {
		t.Errorf("Elapsed = %v, want 0.5", world.Elapsed())
	}
}

func TestWorld_StepParallel(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		world := NewWorld(layout.DetectiveOffice())
		world.Workers = workers

		characters := make([]*actor.Character, 10)
		for i := range characters {
			characters[i] = actor.NewCharacter(mgl64.Vec3{float64(i) - 5, 0, -5})
			characters[i].Input.Backward = true
			world.AddCharacter(characters[i])
		}

		// backing up toward the couch for long enough to reach it
		for range 120 {
			world.Step(1.0 / 60.0)
		}

		for i, c := range characters {
			p := c.Transform.Position
			for _, o := range world.Obstacles() {
				if o.Intersects(p.X()-c.Radius, p.X()+c.Radius, p.Z()-c.Radius, p.Z()+c.Radius) {
					t.Errorf("workers=%d: character %d at %v overlaps %q", workers, i, p, o.ID)
				}
			}
		}

		if world.Workers < DEFAULT_WORKERS {
			t.Errorf("Workers = %d, should be at least %d", world.Workers, DEFAULT_WORKERS)
		}
	}
}

func TestWorld_StepDeterministicAcrossWorkers(t *testing.T) {
	run := func(workers int) []mgl64.Vec3 {
		world := NewWorld(layout.DetectiveOffice())
		world.Workers = workers
		for i := range 6 {
			c := actor.NewCharacter(mgl64.Vec3{float64(i)*2 - 6, 0, -3})
			c.Transform.Yaw = float64(i) * 0.7
			c.Input.Forward = true
			world.AddCharacter(c)
		}
		for range 300 {
			world.Step(1.0 / 60.0)
		}

		positions := make([]mgl64.Vec3, len(world.Characters))
		for i, c := range world.Characters {
			positions[i] = c.Transform.Position
		}
		return positions
	}

	sequential := run(1)
	parallel := run(4)
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Errorf("character %d: sequential %v != parallel %v", i, sequential[i], parallel[i])
		}
	}
}

func BenchmarkWorld_Step(b *testing.B) {
	world := NewWorld(layout.DetectiveOffice())
	world.Workers = 4
	for i := range 32 {
		c := actor.NewCharacter(mgl64.Vec3{float64(i%8) - 4, 0, float64(i/8) - 6})
		c.Input.Forward = true
		world.AddCharacter(c)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Step(1.0 / 60.0)
	}
}
