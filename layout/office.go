// Package layout holds room descriptions: the built-in detective office and YAML layouts.
package layout

import "github.com/akmonengine/roomwalk/actor"

// DetectiveOffice returns the obstacles of the detective office, walls first.
// The room is 20x20 centered on the origin. Furniture boxes are the world-space
// footprints of the scaled and rotated models, rounded outward.
func DetectiveOffice() []actor.Obstacle {
	return []actor.Obstacle{
		// walls, 0.4 thick
		actor.NewObstacle("wall_back", -10, 10, 0, 9, -10.2, -9.8),
		actor.NewObstacle("wall_front", -10, 10, 0, 9, 9.8, 10.2),
		actor.NewObstacle("wall_left", -10.2, -9.8, 0, 9, -10, 10),
		actor.NewObstacle("wall_right", 9.8, 10.2, 0, 9, -10, 10),

		// sitting area
		actor.NewObstacle("couch", -2.56, 2.56, 0, 1.7, 1.235, 2.665),
		actor.NewObstacle("armchair", -4.6, -3.4, 0, 1.7, 2.9, 4.1),

		// desk corner, scaled 1.7
		actor.NewObstacle("detective_desk", -9.95, -7.73, 0, 1.53, -6.29, -2.21),
		actor.NewObstacle("detective_chair", -7.055, -5.865, 0, 2.72, -4.845, -3.655),

		actor.NewObstacle("filing_cabinet_1", -7.79, -7.21, 0, 1.5, -6.95, -6.05),
		actor.NewObstacle("filing_cabinet_2", -8.95, -8.05, 0, 1.5, -6.19, -5.61),
		actor.NewObstacle("filing_cabinet_3", -8.95, -8.05, 0, 1.5, -5.19, -4.61),
		actor.NewObstacle("filing_cabinet_card", -10.15, -9.45, 0, 1.5, -1.79, -1.21),
		actor.NewObstacle("filing_cabinet_lateral", 8.95, 9.85, 0, 1.0, -0.9, 0.9),

		// right wall
		actor.NewObstacle("bookshelf_right_1", 8.6, 9.4, 0, 5, -6.9, -5.1),
		actor.NewObstacle("bookshelf_right_2", 8.6, 9.4, 0, 5, -0.9, 0.9),
		actor.NewObstacle("door", 9.75, 10.15, 0, 3, 7.0, 8.0),

		// tables
		actor.NewObstacle("coffee_table", -1.32, 1.32, 0, 0.5, 3.03, 4.57),
		actor.NewObstacle("end_table_1", -5.85, -5.15, 0, 0.65, 4.25, 4.75),
		// rotated by π/4, the box covers the whole diagonal
		actor.NewObstacle("end_table_2", -3.75, -2.85, 0, 0.65, 2.05, 2.95),
	}
}
