package bloom

import (
	"strconv"

	"shapeflow/pkg/shapes"
)

// Config controls the canvas and population of the sketch.
type Config struct {
	Width  int
	Height int

	Seed int64

	Shapes shapes.Config
}

// DefaultConfig returns the standard configuration: 90% of a 1280x800 window.
func DefaultConfig() Config {
	return Config{
		Width:  1152,
		Height: 720,
		Seed:   42,
		Shapes: shapes.DefaultConfig(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	shapes.ApplyMap(&c.Shapes, cfg)
	return c
}
