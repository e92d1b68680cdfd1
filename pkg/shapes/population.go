package shapes

import (
	"fmt"
	"slices"

	"shapeflow/pkg/core"
)

// Stats accumulates population counters over a run.
type Stats struct {
	Spawned   int
	Expired   int
	Discarded int
	Peak      int
}

// TickReport describes what a single Tick did.
type TickReport struct {
	Frame     int
	Interval  int
	Spawned   int
	Discarded int
	Expired   int
	Live      int
}

// Population owns the live shapes, spawns new ones in bursts and removes
// expired ones. It is not safe for concurrent use.
type Population struct {
	cfg    Config
	rnd    core.Source
	shapes []*Shape
	frame  int
	stats  Stats
}

// New builds a population and seeds it with cfg.InitialShapes shapes born
// inside area. The first Tick is frame 1.
func New(cfg Config, area Size, rnd core.Source) *Population {
	if len(cfg.SpawnIntervals) == 0 {
		cfg.SpawnIntervals = DefaultConfig().SpawnIntervals
	}
	p := &Population{cfg: cfg, rnd: rnd, frame: 1}
	p.spawn(area, cfg.InitialShapes)
	p.stats.Peak = len(p.shapes)
	return p
}

// Tick clears c, renders then advances every live shape, rolls the spawn
// interval and burst, and finally drops expired shapes. area is the canvas
// size for this tick; shapes born or starting a cycle during the tick use it.
func (p *Population) Tick(area Size, c core.Canvas) TickReport {
	if c == nil {
		c = core.Discard
	}
	rep := TickReport{Frame: p.frame}

	c.Clear(p.cfg.Background)
	for _, s := range p.shapes {
		s.Render(c)
		s.Advance(area, p.rnd)
	}

	rep.Interval = p.cfg.SpawnIntervals[p.rnd.IntN(len(p.cfg.SpawnIntervals))]
	if SpawnDue(p.frame, rep.Interval) {
		burst := core.IntRange(p.rnd, p.cfg.MinBurst, p.cfg.MaxBurst)
		rep.Spawned = p.spawn(area, burst)
		rep.Discarded = burst - rep.Spawned
	}

	rep.Expired = p.compact()
	rep.Live = len(p.shapes)
	if rep.Live > p.stats.Peak {
		p.stats.Peak = rep.Live
	}
	p.frame++
	return rep
}

// SpawnDue reports whether a burst spawns on frame for the rolled interval.
func SpawnDue(frame, interval int) bool {
	if interval <= 0 {
		return false
	}
	return frame%interval == 0
}

// spawn appends up to n shapes, respecting the population cap, and returns
// how many were created.
func (p *Population) spawn(area Size, n int) int {
	if n <= 0 {
		return 0
	}
	allowed := n
	if p.cfg.MaxShapes > 0 {
		allowed = min(n, max(p.cfg.MaxShapes-len(p.shapes), 0))
	}
	for i := 0; i < allowed; i++ {
		p.shapes = append(p.shapes, NewShape(area, p.rnd, &p.cfg))
	}
	p.stats.Spawned += allowed
	p.stats.Discarded += n - allowed
	return allowed
}

// compact removes expired shapes in a single order-preserving pass and
// returns how many were dropped.
func (p *Population) compact() int {
	before := len(p.shapes)
	p.shapes = slices.DeleteFunc(p.shapes, (*Shape).Expired)
	removed := before - len(p.shapes)
	p.stats.Expired += removed
	return removed
}

// Shapes exposes the live shapes in creation order. Callers must not modify
// the slice.
func (p *Population) Shapes() []*Shape { return p.shapes }

// Len returns the number of live shapes.
func (p *Population) Len() int { return len(p.shapes) }

// Frame returns the frame number the next Tick will run as.
func (p *Population) Frame() int { return p.frame }

// Stats returns the cumulative counters.
func (p *Population) Stats() Stats { return p.stats }

// Config returns the population's configuration.
func (p *Population) Config() Config { return p.cfg }

// Reconfigure applies fn to a copy of the configuration and adopts it when it
// validates. Live shapes see the new values from their next cycle on.
func (p *Population) Reconfigure(fn func(*Config)) error {
	next := p.cfg
	next.Palette = slices.Clone(p.cfg.Palette)
	next.SpawnIntervals = slices.Clone(p.cfg.SpawnIntervals)
	fn(&next)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("reconfigure population: %w", err)
	}
	p.cfg = next
	return nil
}

// SetMaxShapes changes the population cap. Shapes above a lowered cap are
// kept; only new spawns are limited.
func (p *Population) SetMaxShapes(n int) {
	if n < 0 {
		n = 0
	}
	p.cfg.MaxShapes = n
}
