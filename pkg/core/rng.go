package core

import "math/rand/v2"

// Source is the entropy every random decision in the animation core is drawn
// from. *rand.Rand satisfies it, as do RNG and Sequence.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range draws a float uniformly from [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// IntRange draws an integer uniformly from [lo, hi). When hi <= lo it returns lo.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}

// Sign returns -1 or 1 with equal probability.
func Sign(src Source) float64 {
	if src.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Sequence replays scripted draws. Floats and ints are consumed from separate
// queues; once a queue is exhausted the draw falls through to Fallback, or
// returns zero when no fallback is set. Out-of-range scripted values are
// clamped so callers always see values inside their requested bounds.
type Sequence struct {
	Floats   []float64
	Ints     []int
	Fallback Source
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		if s.Fallback != nil {
			return s.Fallback.Float64()
		}
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.9999999999
	}
	return v
}

// IntN returns the next scripted int, clamped to [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.Ints) == 0 {
		if s.Fallback != nil {
			return s.Fallback.IntN(n)
		}
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	switch {
	case v < 0:
		return 0
	case v >= n:
		return n - 1
	}
	return v
}
