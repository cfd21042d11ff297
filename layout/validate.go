package layout

import (
	"errors"
	"fmt"

	"github.com/akmonengine/roomwalk/actor"
)

var (
	ErrEmpty          = errors.New("layout has no obstacle")
	ErrEmptyID        = errors.New("obstacle has no id")
	ErrDuplicateID    = errors.New("duplicate obstacle id")
	ErrInvertedBounds = errors.New("obstacle min is greater than max")
	ErrDynamic        = errors.New("dynamic obstacles are not supported")
)

// Validate checks a layout before it is handed to a world.
// Every problem found is reported, joined in a single error.
func Validate(obstacles []actor.Obstacle) error {
	if len(obstacles) == 0 {
		return ErrEmpty
	}

	var errs []error
	seen := make(map[string]int, len(obstacles))
	for i, o := range obstacles {
		if o.ID == "" {
			errs = append(errs, fmt.Errorf("obstacle #%d: %w", i, ErrEmptyID))
		} else if first, ok := seen[o.ID]; ok {
			errs = append(errs, fmt.Errorf("obstacle #%d %q, first declared at #%d: %w", i, o.ID, first, ErrDuplicateID))
		} else {
			seen[o.ID] = i
		}

		if !o.Bounds.IsValid() {
			errs = append(errs, fmt.Errorf("obstacle #%d %q min=%v max=%v: %w", i, o.ID, o.Bounds.Min, o.Bounds.Max, ErrInvertedBounds))
		}
		if !o.IsStatic {
			errs = append(errs, fmt.Errorf("obstacle #%d %q: %w", i, o.ID, ErrDynamic))
		}
	}

	return errors.Join(errs...)
}
