package shapes

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"shapeflow/pkg/core"
)

const (
	birthRegionMin = 0.3
	birthRegionMax = 0.7

	minSizeFactor = 0.5
	maxSizeFactor = 1.5

	// Movement targets step by a tenth of the canvas, 1 to 3 steps.
	moveDivisions = 10
	minMoveSteps  = 1
	maxMoveSteps  = 4

	squashFloor = 0.3
)

// Shape animates one shape through its action cycles: an entrance that grows
// it from nothing, mid-life cycles driven by a random Phase, and a terminal
// cycle that shrinks it back to nothing before it expires.
type Shape struct {
	x, y    float64
	size    float64
	maxSize float64
	kind    Kind
	phase   Phase
	color   color.RGBA

	points      int
	totalPoints int

	elapsed  int
	duration float64
	progress *gween.Tween
	eased    float64
	easing   ease.TweenFunc

	fromSize, toSize float64
	fromX, toX       float64
	fromY, toY       float64

	squash     float64
	trailWidth float64

	canMorph bool
	morphs   int
	expired  bool

	cfg *Config
}

// NewShape births a shape somewhere in the central region of area and starts
// its entrance cycle. cfg must outlive the shape.
func NewShape(area Size, rnd core.Source, cfg *Config) *Shape {
	easing, ok := Easing(cfg.Easing)
	if !ok {
		easing = InOutExpo
	}
	s := &Shape{
		x:      core.Range(rnd, birthRegionMin, birthRegionMax) * area.W,
		y:      core.Range(rnd, birthRegionMin, birthRegionMax) * area.H,
		kind:   Kind(rnd.IntN(birthKinds)),
		squash: 1,
		easing: easing,
		cfg:    cfg,
	}
	s.totalPoints = core.IntRange(rnd, cfg.MinPoints, cfg.MaxPoints)
	s.points = s.totalPoints
	s.maxSize = area.W * core.Range(rnd, cfg.MinSizeRatio, cfg.MaxSizeRatio)
	s.beginCycle(area, rnd)
	if len(cfg.Palette) > 0 {
		s.color = cfg.Palette[rnd.IntN(len(cfg.Palette))]
	}
	return s
}

// beginCycle captures the current attributes as the start of a new action
// cycle and rolls the targets, phase and duration for it.
func (s *Shape) beginCycle(area Size, rnd core.Source) {
	s.fromSize = s.size
	s.toSize = s.maxSize * core.Range(rnd, minSizeFactor, maxSizeFactor)
	s.fromX = s.x
	s.toX = s.fromX + area.W/moveDivisions*core.Sign(rnd)*float64(core.IntRange(rnd, minMoveSteps, maxMoveSteps))
	s.fromY = s.y
	s.toY = s.fromY + area.H/moveDivisions*core.Sign(rnd)*float64(core.IntRange(rnd, minMoveSteps, maxMoveSteps))
	s.phase = Phase(rnd.IntN(numPhases))
	s.duration = core.Range(rnd, s.cfg.MinCycleTicks, s.cfg.MaxCycleTicks)
	s.canMorph = true
	s.morphs = 0
	s.restartClock()
}

func (s *Shape) restartClock() {
	s.elapsed = 0
	s.eased = 0
	s.progress = gween.New(0, 1, float32(s.duration), s.easing)
}

// Advance moves the shape forward by exactly one tick. area is only read when
// a new cycle begins. Expired shapes are inert.
func (s *Shape) Advance(area Size, rnd core.Source) {
	if s.expired {
		return
	}

	n := s.eased
	if s.elapsed > 0 && float64(s.elapsed) < s.duration {
		switch {
		case s.points == s.totalPoints:
			s.size = lerp(0, s.maxSize, n)
		case s.points > 0:
			s.act(n, rnd)
			s.squash = lerp(1, squashFloor, math.Sin(n*math.Pi))
		default:
			s.size = lerp(s.fromSize, 0, n)
		}
	}

	s.elapsed++
	v, _ := s.progress.Update(1)
	s.eased = clamp01(float64(v))

	if float64(s.elapsed) > s.duration {
		s.points--
		if s.points < 0 {
			s.expired = true
			s.size = 0
			return
		}
		s.beginCycle(area, rnd)
	}
}

// act applies the current phase for a mid-life cycle at eased progress n.
func (s *Shape) act(n float64, rnd core.Source) {
	switch s.phase {
	case Resize:
		s.size = lerp(s.fromSize, s.toSize, n)
	case TranslateVertical:
		s.x = lerp(s.fromX, s.toX, n)
		s.trailWidth = lerp(0, s.size/5, math.Sin(n*math.Pi))
	case TranslateHorizontal:
		s.y = lerp(s.fromY, s.toY, n)
		s.trailWidth = lerp(0, s.size/5, math.Sin(n*math.Pi))
	case MorphShape:
		if s.canMorph {
			s.kind = Kind(rnd.IntN(numKinds))
			s.canMorph = false
			s.morphs++
		}
	}
}

// Render draws the shape at its current state followed by its motion trail.
func (s *Shape) Render(c core.Canvas) {
	c.Push()
	c.Translate(s.x, s.y)
	switch s.phase {
	case TranslateVertical:
		c.Scale(1, s.squash)
	case TranslateHorizontal:
		c.Scale(s.squash, 1)
	}

	weight := s.size * 0.05
	switch s.kind {
	case FilledCircle:
		c.NoStroke()
		c.SetFill(s.color)
		c.Circle(s.size)
	case StrokedCircle:
		c.NoFill()
		c.SetStroke(s.color, weight)
		c.Circle(s.size)
	case FilledSquare:
		c.NoStroke()
		c.SetFill(s.color)
		c.Rect(s.size, s.size)
	case StrokedSquare:
		c.NoFill()
		c.SetStroke(s.color, weight)
		c.Rect(s.size*0.9, s.size*0.9)
	case Cross:
		c.NoFill()
		c.SetStroke(s.color, s.size*0.1)
		arm := s.size * 0.45
		c.Line(0, -arm, 0, arm)
		c.Line(-arm, 0, arm, 0)
	}
	c.Pop()

	c.SetStroke(s.color, s.trailWidth)
	c.Line(s.x, s.y, s.fromX, s.fromY)
}

// Position returns the shape's center in canvas units.
func (s *Shape) Position() (x, y float64) { return s.x, s.y }

// Target returns where the current cycle's translation would end.
func (s *Shape) Target() (x, y float64) { return s.toX, s.toY }

// Size returns the current size (diameter or side length).
func (s *Shape) Size() float64 { return s.size }

// MaxSize returns the size the entrance cycle grows to.
func (s *Shape) MaxSize() float64 { return s.maxSize }

// Kind returns the current draw primitive.
func (s *Shape) Kind() Kind { return s.kind }

// Phase returns the phase rolled for the current cycle.
func (s *Shape) Phase() Phase { return s.phase }

// Color returns the shape's fixed color.
func (s *Shape) Color() color.RGBA { return s.color }

// Points returns the remaining action points.
func (s *Shape) Points() int { return s.points }

// TotalPoints returns the action points the shape was born with.
func (s *Shape) TotalPoints() int { return s.totalPoints }

// Entering reports whether the shape is still in its entrance cycle.
func (s *Shape) Entering() bool { return s.points == s.totalPoints }

// Squash returns the secondary squash/stretch scale.
func (s *Shape) Squash() float64 { return s.squash }

// TrailWidth returns the stroke width of the motion trail.
func (s *Shape) TrailWidth() float64 { return s.trailWidth }

// Expired reports whether the shape finished its terminal cycle.
func (s *Shape) Expired() bool { return s.expired }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
