package shapes

import (
	"math"
	"slices"
	"strings"
	"testing"

	"shapeflow/pkg/core"
)

var testArea = Size{W: 800, H: 600}

// cycleShape builds a shape positioned at the start of a cycle without going
// through the random birth.
func cycleShape(points, total int, phase Phase, duration float64) *Shape {
	cfg := DefaultConfig()
	s := &Shape{
		points:      points,
		totalPoints: total,
		phase:       phase,
		duration:    duration,
		squash:      1,
		easing:      InOutExpo,
		canMorph:    true,
		color:       cfg.Palette[0],
		cfg:         &cfg,
	}
	s.restartClock()
	return s
}

func TestNewShapeScriptedBirth(t *testing.T) {
	cfg := DefaultConfig()
	rnd := &core.Sequence{
		Floats: []float64{0.5, 0.25, 0.75, 0.5, 0.5},
		Ints:   []int{3, 2, 1, 2, 0, 0, 2, 1},
	}

	s := NewShape(testArea, rnd, &cfg)

	if x, y := s.Position(); math.Abs(x-400) > 1e-9 || math.Abs(y-240) > 1e-9 {
		t.Fatalf("position = (%v, %v), want (400, 240)", x, y)
	}
	if s.Kind() != StrokedSquare {
		t.Fatalf("kind = %v, want %v", s.Kind(), StrokedSquare)
	}
	if s.TotalPoints() != 4 || s.Points() != 4 {
		t.Fatalf("points = %d/%d, want 4/4", s.Points(), s.TotalPoints())
	}
	if math.Abs(s.MaxSize()-32) > 1e-9 {
		t.Fatalf("max size = %v, want 32", s.MaxSize())
	}
	if s.Size() != 0 {
		t.Fatalf("newborn size = %v, want 0", s.Size())
	}
	if math.Abs(s.toSize-32) > 1e-9 {
		t.Fatalf("to size = %v, want 32", s.toSize)
	}
	if tx, ty := s.Target(); math.Abs(tx-640) > 1e-9 || math.Abs(ty-180) > 1e-9 {
		t.Fatalf("target = (%v, %v), want (640, 180)", tx, ty)
	}
	if s.Phase() != TranslateHorizontal {
		t.Fatalf("phase = %v, want %v", s.Phase(), TranslateHorizontal)
	}
	if s.duration != 35 {
		t.Fatalf("duration = %v, want 35", s.duration)
	}
	if s.Color() != cfg.Palette[1] {
		t.Fatalf("color = %v, want %v", s.Color(), cfg.Palette[1])
	}
	if !s.Entering() || s.Expired() {
		t.Fatalf("newborn must be entering and alive")
	}
}

func TestNewShapeNeverBornAsCross(t *testing.T) {
	cfg := DefaultConfig()
	rng := core.NewRNG(5)
	for i := 0; i < 2000; i++ {
		s := NewShape(testArea, rng, &cfg)
		if s.Kind() == Cross {
			t.Fatalf("shape %d born as cross", i)
		}
		if s.TotalPoints() < 2 || s.TotalPoints() >= 5 {
			t.Fatalf("shape %d born with %d points", i, s.TotalPoints())
		}
		x, y := s.Position()
		if x < 0.3*testArea.W || x >= 0.7*testArea.W || y < 0.3*testArea.H || y >= 0.7*testArea.H {
			t.Fatalf("shape %d born outside central region at (%v, %v)", i, x, y)
		}
		if r := s.MaxSize() / testArea.W; r < 0.01 || r >= 0.05 {
			t.Fatalf("shape %d max size ratio %v", i, r)
		}
	}
}

func TestEntranceGrowsToMaxThenDecrements(t *testing.T) {
	s := cycleShape(3, 3, Resize, 20)
	s.maxSize = 40
	s.fromSize = 0
	s.toSize = 40
	rnd := &core.Sequence{}

	for i := 0; i < 20; i++ {
		s.Advance(testArea, rnd)
	}
	if math.Abs(s.Size()-40) > 0.1 {
		t.Fatalf("size after 20 ticks = %v, want ~40", s.Size())
	}
	if s.Points() != 3 {
		t.Fatalf("points after 20 ticks = %d, want 3", s.Points())
	}

	grown := s.Size()
	s.Advance(testArea, rnd)
	if s.Points() != 2 {
		t.Fatalf("points after cycle end = %d, want 2", s.Points())
	}
	if s.elapsed != 0 {
		t.Fatalf("elapsed after cycle end = %d, want 0", s.elapsed)
	}
	if s.fromSize != grown {
		t.Fatalf("next cycle from size = %v, want %v", s.fromSize, grown)
	}
	if s.Entering() {
		t.Fatalf("shape still entering after first cycle")
	}
}

func TestBoundaryTicksAreInert(t *testing.T) {
	s := cycleShape(3, 3, Resize, 20)
	s.maxSize = 40

	s.Advance(testArea, &core.Sequence{})
	if s.Size() != 0 {
		t.Fatalf("size after first tick = %v, want 0", s.Size())
	}
	s.Advance(testArea, &core.Sequence{})
	want := 40 * EaseInOutExpo(1.0/20)
	if math.Abs(s.Size()-want) > 1e-4 {
		t.Fatalf("size after second tick = %v, want %v", s.Size(), want)
	}
}

func TestTerminalCycleShrinksAndExpires(t *testing.T) {
	s := cycleShape(0, 3, Resize, 20)
	s.size = 30
	s.fromSize = 30
	rnd := &core.Sequence{}

	for i := 0; i < 20; i++ {
		s.Advance(testArea, rnd)
	}
	if s.Expired() {
		t.Fatal("expired before terminal cycle ended")
	}
	if s.Size() > 0.1 {
		t.Fatalf("size near end of terminal cycle = %v", s.Size())
	}

	s.Advance(testArea, rnd)
	if !s.Expired() {
		t.Fatal("expected expiry on tick 21 of terminal cycle")
	}
	if s.Size() != 0 {
		t.Fatalf("expired size = %v, want 0", s.Size())
	}

	x, y := s.Position()
	s.Advance(testArea, rnd)
	if nx, ny := s.Position(); nx != x || ny != y || s.Points() != -1 {
		t.Fatalf("expired shape changed state")
	}
}

func TestShapeExpiresAfterTotalPlusOneCycles(t *testing.T) {
	cfg := DefaultConfig()
	rnd := &core.Sequence{}
	s := NewShape(testArea, rnd, &cfg)
	if s.TotalPoints() != 2 || s.duration != 20 {
		t.Fatalf("zero script should yield 2 points and 20 tick cycles, got %d and %v", s.TotalPoints(), s.duration)
	}

	cycles := s.TotalPoints() + 1
	ticks := cycles * 21
	for i := 0; i < ticks-1; i++ {
		s.Advance(testArea, rnd)
		if s.Expired() {
			t.Fatalf("expired early at tick %d", i+1)
		}
	}
	s.Advance(testArea, rnd)
	if !s.Expired() {
		t.Fatalf("not expired after %d cycles", cycles)
	}
}

func TestTranslateVerticalMovesX(t *testing.T) {
	s := cycleShape(2, 3, TranslateVertical, 20)
	s.size = 10
	s.x, s.fromX, s.toX = 100, 100, 180
	s.y, s.fromY, s.toY = 50, 50, 90

	for i := 0; i < 10; i++ {
		s.Advance(testArea, &core.Sequence{})
	}

	n := EaseInOutExpo(9.0 / 20)
	if x, y := s.Position(); math.Abs(x-(100+80*n)) > 1e-3 || y != 50 {
		t.Fatalf("position = (%v, %v), want (%v, 50)", x, y, 100+80*n)
	}
	wantTrail := 10.0 / 5 * math.Sin(n*math.Pi)
	if math.Abs(s.TrailWidth()-wantTrail) > 1e-3 {
		t.Fatalf("trail width = %v, want %v", s.TrailWidth(), wantTrail)
	}
	wantSquash := 1 + (0.3-1)*math.Sin(n*math.Pi)
	if math.Abs(s.Squash()-wantSquash) > 1e-3 {
		t.Fatalf("squash = %v, want %v", s.Squash(), wantSquash)
	}
}

func TestTranslateHorizontalMovesY(t *testing.T) {
	s := cycleShape(1, 3, TranslateHorizontal, 30)
	s.size = 10
	s.x, s.fromX, s.toX = 100, 100, 180
	s.y, s.fromY, s.toY = 50, 50, 110

	for i := 0; i < 25; i++ {
		s.Advance(testArea, &core.Sequence{})
	}

	n := EaseInOutExpo(24.0 / 30)
	if x, y := s.Position(); x != 100 || math.Abs(y-(50+60*n)) > 1e-3 {
		t.Fatalf("position = (%v, %v), want (100, %v)", x, y, 50+60*n)
	}
}

func TestMorphRerollsAtMostOncePerCycle(t *testing.T) {
	s := cycleShape(2, 3, MorphShape, 30)
	rnd := &core.Sequence{Ints: []int{4}, Fallback: core.NewRNG(9)}

	for i := 0; i < 30; i++ {
		s.Advance(testArea, rnd)
		if s.morphs > 1 {
			t.Fatalf("morphed %d times within one cycle", s.morphs)
		}
	}
	if s.morphs != 1 {
		t.Fatalf("morphs = %d, want exactly 1", s.morphs)
	}
	if s.Kind() != Cross {
		t.Fatalf("kind = %v, want cross from scripted roll", s.Kind())
	}
}

func TestEntranceIgnoresMorphPhase(t *testing.T) {
	s := cycleShape(3, 3, MorphShape, 20)
	s.maxSize = 10
	s.kind = FilledCircle

	for i := 0; i < 10; i++ {
		s.Advance(testArea, core.NewRNG(1))
	}
	if s.morphs != 0 || s.Kind() != FilledCircle {
		t.Fatalf("entrance cycle morphed the shape")
	}
	if s.Size() <= 0 {
		t.Fatalf("entrance did not grow the shape")
	}
}

func TestSizeStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	rng := core.NewRNG(11)
	var live []*Shape
	for tick := 0; tick < 1500; tick++ {
		if tick%7 == 0 {
			live = append(live, NewShape(testArea, rng, &cfg))
		}
		for _, s := range live {
			s.Advance(testArea, rng)
			if s.Size() < 0 {
				t.Fatalf("tick %d: negative size %v", tick, s.Size())
			}
			limit := 1.5 * s.MaxSize()
			if s.Entering() {
				limit = s.MaxSize()
			}
			if s.Size() > limit+1e-9 {
				t.Fatalf("tick %d: size %v exceeds %v (entering=%v)", tick, s.Size(), limit, s.Entering())
			}
		}
		live = slices.DeleteFunc(live, (*Shape).Expired)
	}
}

func TestRenderFilledCircle(t *testing.T) {
	s := cycleShape(2, 3, Resize, 20)
	s.kind = FilledCircle
	s.x, s.y = 10, 20
	s.fromX, s.fromY = 5, 20
	s.size = 8
	s.trailWidth = 1.5

	rec := &recorder{}
	s.Render(rec)

	want := []string{
		"push",
		"translate 10.00 20.00",
		"nostroke",
		"fill #f71735",
		"circle 8.00",
		"pop",
		"stroke #f71735 1.50",
		"line 10.00 20.00 5.00 20.00",
	}
	if !slices.Equal(rec.ops, want) {
		t.Fatalf("ops = %q\nwant %q", rec.ops, want)
	}
}

func TestRenderScalesByPhase(t *testing.T) {
	s := cycleShape(2, 3, TranslateVertical, 20)
	s.squash = 0.5
	s.kind = StrokedSquare
	s.size = 10

	rec := &recorder{}
	s.Render(rec)
	if rec.ops[2] != "scale 1.00 0.50" {
		t.Fatalf("vertical phase scale op = %q", rec.ops[2])
	}
	if !slices.Contains(rec.ops, "rect 9.00 9.00") || !slices.Contains(rec.ops, "stroke #f71735 0.50") {
		t.Fatalf("stroked square ops = %q", rec.ops)
	}

	s.phase = TranslateHorizontal
	rec = &recorder{}
	s.Render(rec)
	if rec.ops[2] != "scale 0.50 1.00" {
		t.Fatalf("horizontal phase scale op = %q", rec.ops[2])
	}

	s.phase = Resize
	rec = &recorder{}
	s.Render(rec)
	for _, op := range rec.ops {
		if strings.HasPrefix(op, "scale") {
			t.Fatalf("resize phase must not scale, got %q", rec.ops)
		}
	}
}

func TestRenderCross(t *testing.T) {
	s := cycleShape(2, 3, Resize, 20)
	s.kind = Cross
	s.size = 20

	rec := &recorder{}
	s.Render(rec)
	for _, want := range []string{"stroke #f71735 2.00", "line 0.00 -9.00 0.00 9.00", "line -9.00 0.00 9.00 0.00"} {
		if !slices.Contains(rec.ops, want) {
			t.Fatalf("cross ops missing %q: %q", want, rec.ops)
		}
	}
}
