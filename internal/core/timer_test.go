package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacesTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(60)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	clock.advance(fs.Interval() / 2)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock.advance(fs.Interval() / 2)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.Reset()
	fs.ShouldStep()

	clock.advance(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
		if steps > 100 {
			break
		}
	}
	if steps != maxBacklog {
		t.Fatalf("replayed %d ticks after a stall, want %d", steps, maxBacklog)
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 || fs.Interval() != time.Second/60 {
		t.Fatalf("default tps = %d interval %v", fs.TPS(), fs.Interval())
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)
	if g.At(3, 2) != 7 {
		t.Fatalf("At(3,2) = %d", g.At(3, 2))
	}
	if g.At(4, 0) != 0 || g.At(-1, 0) != 0 {
		t.Fatal("out of bounds access must read 0")
	}
	g.Fill(2)
	for i, v := range g.Cells() {
		if v != 2 {
			t.Fatalf("cell %d = %d after Fill", i, v)
		}
	}
	g.Resize(2, 2)
	if len(g.Cells()) != 4 || g.At(1, 1) != 0 {
		t.Fatal("Resize must reallocate and clear")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sketches())
	Register("", func(map[string]string) Sketch { return nil })
	Register("nil-factory", nil)
	if len(Sketches()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
