package bloom

import (
	"shapeflow/internal/core"
	pcore "shapeflow/pkg/core"
	"shapeflow/pkg/shapes"
)

// Bloom is the shape population sketch: bursts of shapes bloom in the middle
// of the canvas, wander, morph and fade out.
type Bloom struct {
	cfg  Config
	size core.Size
	seed int64
	pop  *shapes.Population
	last shapes.TickReport
}

// New creates a sketch from cfg and resets it with cfg.Seed.
func New(cfg Config) *Bloom {
	b := &Bloom{cfg: cfg, size: core.Size{W: cfg.Width, H: cfg.Height}}
	b.Reset(cfg.Seed)
	return b
}

// Name identifies the sketch.
func (b *Bloom) Name() string { return "shapes" }

// Size returns the canvas dimensions.
func (b *Bloom) Size() core.Size { return b.size }

// Resize changes the canvas for shapes born or starting a cycle from now on.
// Existing shapes keep their absolute coordinates.
func (b *Bloom) Resize(s core.Size) {
	if s.W <= 0 || s.H <= 0 {
		return
	}
	b.size = s
}

// Reset discards every shape and starts over from seed.
func (b *Bloom) Reset(seed int64) {
	b.seed = seed
	b.pop = shapes.New(b.cfg.Shapes, b.area(), pcore.NewRNG(seed))
	b.last = shapes.TickReport{}
}

// Seed returns the seed of the current run.
func (b *Bloom) Seed() int64 { return b.seed }

// Step runs one population tick, drawing the frame to c.
func (b *Bloom) Step(c pcore.Canvas) {
	b.last = b.pop.Tick(b.area(), c)
}

// Population exposes the live population for overlays.
func (b *Bloom) Population() *shapes.Population { return b.pop }

// LastTick returns the report of the most recent Step.
func (b *Bloom) LastTick() shapes.TickReport { return b.last }

// SetIntParameter adjusts the population cap or a spawning range at runtime.
// Updates that would leave the configuration invalid are rejected.
func (b *Bloom) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_shapes":
		if value < 0 {
			return false
		}
		b.pop.SetMaxShapes(value)
		b.cfg.Shapes.MaxShapes = value
		return true
	case "min_burst":
		return b.reconfigure(func(c *shapes.Config) { c.MinBurst = value })
	case "max_burst":
		return b.reconfigure(func(c *shapes.Config) { c.MaxBurst = value })
	case "min_points":
		return b.reconfigure(func(c *shapes.Config) { c.MinPoints = value })
	case "max_points":
		return b.reconfigure(func(c *shapes.Config) { c.MaxPoints = value })
	}
	return false
}

// SetFloatParameter adjusts the cycle duration range at runtime.
func (b *Bloom) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "min_cycle":
		return b.reconfigure(func(c *shapes.Config) { c.MinCycleTicks = value })
	case "max_cycle":
		return b.reconfigure(func(c *shapes.Config) { c.MaxCycleTicks = value })
	}
	return false
}

func (b *Bloom) reconfigure(fn func(*shapes.Config)) bool {
	if err := b.pop.Reconfigure(fn); err != nil {
		return false
	}
	b.cfg.Shapes = b.pop.Config()
	return true
}

// ParameterControls lists the values the HUD can adjust.
func (b *Bloom) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_shapes", Label: "Cap", Type: core.ParamTypeInt, Step: 100, HasMin: true},
		{Key: "min_burst", Label: "Burst min", Type: core.ParamTypeInt, Step: 1, HasMin: true},
		{Key: "max_burst", Label: "Burst max", Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true},
		{Key: "min_points", Label: "Points min", Type: core.ParamTypeInt, Step: 1, HasMin: true},
		{Key: "max_points", Label: "Points max", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "min_cycle", Label: "Cycle min", Type: core.ParamTypeFloat, Step: 5, Min: 1, HasMin: true},
		{Key: "max_cycle", Label: "Cycle max", Type: core.ParamTypeFloat, Step: 5, Min: 1, HasMin: true},
	}
}

func (b *Bloom) area() shapes.Size {
	return shapes.Size{W: float64(b.size.W), H: float64(b.size.H)}
}

func init() {
	core.Register("shapes", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
