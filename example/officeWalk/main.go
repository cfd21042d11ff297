package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/akmonengine/roomwalk"
	"github.com/akmonengine/roomwalk/actor"
	"github.com/akmonengine/roomwalk/layout"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Leg is a part of the scripted walk: keys held for a duration, facing yaw
type Leg struct {
	Name     string
	Yaw      float64
	Input    actor.Input
	Duration float64 // seconds
}

// tour walks the detective around the office, bumping into the furniture on purpose
var tour = []Leg{
	{Name: "to the back wall", Yaw: 0, Input: actor.Input{Forward: true}, Duration: 1.5},
	{Name: "along the back wall", Yaw: 0, Input: actor.Input{Forward: true, Left: true}, Duration: 1.5},
	{Name: "toward the desk", Yaw: math.Pi / 2, Input: actor.Input{Forward: true}, Duration: 1},
	{Name: "back to the couch", Yaw: math.Pi, Input: actor.Input{Forward: true}, Duration: 2},
	{Name: "toward the door", Yaw: -math.Pi / 2, Input: actor.Input{Forward: true, Left: true}, Duration: 2.5},
	{Name: "rest", Yaw: -math.Pi / 2, Duration: 0.5},
}

func main() {
	layoutPath := flag.String("layout", "", "YAML layout file, the built-in detective office when empty")
	dump := flag.Bool("dump", false, "write the built-in layout as YAML to stdout and exit")
	workers := flag.Int("workers", roomwalk.DEFAULT_WORKERS, "number of goroutines moving the walkers")
	walkers := flag.Int("walkers", 1, "number of detectives walking the tour")
	fps := flag.Float64("fps", 60, "simulation steps per second")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *dump {
		if err := layout.WriteYAML(os.Stdout, "detective_office", layout.DetectiveOffice()); err != nil {
			logger.Fatal("dump layout", zap.Error(err))
		}
		return
	}

	obstacles := layout.DetectiveOffice()
	if *layoutPath != "" {
		obstacles, err = layout.LoadFile(*layoutPath)
		if err != nil {
			logger.Fatal("load layout", zap.String("path", *layoutPath), zap.Error(err))
		}
	}

	world := roomwalk.NewWorld(obstacles)
	world.Workers = *workers
	logger.Info("room ready",
		zap.Int("obstacles", len(obstacles)),
		zap.String("fingerprint", fmt.Sprintf("%016x", layout.Fingerprint(obstacles))),
		zap.Int("workers", world.Workers),
	)

	subscribe(world, logger)

	for i, n := 0, *walkers; i < n; i++ {
		// side by side, footprints touching
		c := actor.NewCharacter(mgl64.Vec3{float64(i) * 2 * actor.DefaultRadius, 0, -3})
		c.Id = i
		world.AddCharacter(c)
	}

	dt := 1 / *fps
	for _, leg := range tour {
		for _, c := range world.Characters {
			c.Transform.Yaw = leg.Yaw
			c.Input = leg.Input
		}

		steps := int(math.Round(leg.Duration * *fps))
		for i := 0; i < steps; i++ {
			world.Step(dt)
		}

		for _, c := range world.Characters {
			p := c.Transform.Position
			logger.Info("leg done",
				zap.String("leg", leg.Name),
				zap.Any("walker", c.Id),
				zap.Float64("x", p.X()),
				zap.Float64("z", p.Z()),
				zap.Float64("elapsed", world.Elapsed()),
			)
		}
	}
}

func subscribe(world *roomwalk.World, logger *zap.Logger) {
	world.Events.Subscribe(roomwalk.CONTACT_ENTER, func(event roomwalk.Event) {
		e := event.(roomwalk.ContactEnterEvent)
		p := e.Character.Transform.Position
		logger.Info("blocked",
			zap.Any("walker", e.Character.Id),
			zap.String("obstacle", e.Obstacle),
			zap.Float64("x", p.X()),
			zap.Float64("z", p.Z()),
		)
	})
	world.Events.Subscribe(roomwalk.CONTACT_EXIT, func(event roomwalk.Event) {
		e := event.(roomwalk.ContactExitEvent)
		logger.Debug("free", zap.Any("walker", e.Character.Id), zap.String("obstacle", e.Obstacle))
	})
}
