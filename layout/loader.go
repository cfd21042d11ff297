package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/roomwalk/actor"
	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a room
type Config struct {
	Name      string           `yaml:"name"`
	Obstacles []ConfigObstacle `yaml:"obstacles"`
}

type ConfigObstacle struct {
	ID   string  `yaml:"id"`
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
	MinZ float64 `yaml:"minZ"`
	MaxZ float64 `yaml:"maxZ"`
	// Static defaults to true when omitted
	Static *bool `yaml:"static,omitempty"`
}

// LoadYAML reads and validates a layout
func LoadYAML(r io.Reader) ([]actor.Obstacle, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	obstacles := c.Build()
	if err := Validate(obstacles); err != nil {
		return nil, err
	}

	return obstacles, nil
}

// LoadFile reads and validates the layout stored at path
func LoadFile(path string) ([]actor.Obstacle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obstacles, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obstacles, nil
}

// Build converts the config entries to obstacles, keeping their order
func (c *Config) Build() []actor.Obstacle {
	obstacles := make([]actor.Obstacle, 0, len(c.Obstacles))
	for _, co := range c.Obstacles {
		o := actor.NewObstacle(co.ID, co.MinX, co.MaxX, co.MinY, co.MaxY, co.MinZ, co.MaxZ)
		if co.Static != nil {
			o.IsStatic = *co.Static
		}
		obstacles = append(obstacles, o)
	}

	return obstacles
}

// WriteYAML encodes obstacles in the format read by LoadYAML
func WriteYAML(w io.Writer, name string, obstacles []actor.Obstacle) error {
	c := Config{Name: name, Obstacles: make([]ConfigObstacle, 0, len(obstacles))}
	for _, o := range obstacles {
		static := o.IsStatic
		c.Obstacles = append(c.Obstacles, ConfigObstacle{
			ID:     o.ID,
			MinX:   o.Bounds.Min.X(),
			MaxX:   o.Bounds.Max.X(),
			MinY:   o.Bounds.Min.Y(),
			MaxY:   o.Bounds.Max.Y(),
			MinZ:   o.Bounds.Min.Z(),
			MaxZ:   o.Bounds.Max.Z(),
			Static: &static,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}
