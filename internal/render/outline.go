package render

import (
	"math"

	"golang.org/x/image/vector"
)

type pathVerb uint8

const (
	verbMove pathVerb = iota
	verbLine
	verbCube
	verbClose
)

type pathOp struct {
	verb pathVerb
	pts  [3][2]float64
}

// outline is a device-space path recorded ahead of rasterization so its
// bounds are known. Subpaths wound the opposite way cut holes.
type outline struct {
	ops []pathOp
}

func (o *outline) reset() { o.ops = o.ops[:0] }

func (o *outline) moveTo(x, y float64) {
	o.ops = append(o.ops, pathOp{verb: verbMove, pts: [3][2]float64{{x, y}}})
}

func (o *outline) lineTo(x, y float64) {
	o.ops = append(o.ops, pathOp{verb: verbLine, pts: [3][2]float64{{x, y}}})
}

func (o *outline) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	o.ops = append(o.ops, pathOp{verb: verbCube, pts: [3][2]float64{{x1, y1}, {x2, y2}, {x3, y3}}})
}

func (o *outline) close() { o.ops = append(o.ops, pathOp{verb: verbClose}) }

// ellipse appends the circle of radius rad around the local origin mapped
// through m. reverse winds it clockwise.
func (o *outline) ellipse(m Matrix, rad float64, reverse bool) {
	dir := 1.0
	if reverse {
		dir = -1
	}
	o.moveTo(m.Apply(rad, 0))
	o.quarterArcs(m, 0, 0, rad, 0, dir, 4)
	o.close()
}

// box appends the rectangle [-hw, hw] x [-hh, hh] mapped through m.
func (o *outline) box(m Matrix, hw, hh float64, reverse bool) {
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	if reverse {
		corners[1], corners[3] = corners[3], corners[1]
	}
	o.moveTo(m.Apply(corners[0][0], corners[0][1]))
	for _, c := range corners[1:] {
		o.lineTo(m.Apply(c[0], c[1]))
	}
	o.close()
}

// segment appends a device-space capsule of half width half around a-b.
func (o *outline) segment(ax, ay, bx, by, half float64) {
	phi := math.Atan2(by-ay, bx-ax)
	s, c := math.Sincos(phi)
	nx, ny := -s*half, c*half
	o.moveTo(ax+nx, ay+ny)
	o.lineTo(bx+nx, by+ny)
	o.quarterArcs(Identity, bx, by, half, phi+math.Pi/2, -1, 2)
	o.lineTo(ax-nx, ay-ny)
	o.quarterArcs(Identity, ax, ay, half, phi-math.Pi/2, -1, 2)
	o.close()
}

// quarterArcs appends n quarter circle cubics around (cx, cy) starting at
// angle a0 from the current pen position, counterclockwise for dir 1 and
// clockwise for dir -1.
func (o *outline) quarterArcs(m Matrix, cx, cy, rad, a0, dir float64, n int) {
	k := kappa * rad
	for i := 0; i < n; i++ {
		t0 := a0 + dir*float64(i)*math.Pi/2
		t1 := t0 + dir*math.Pi/2
		s0, c0 := math.Sincos(t0)
		s1, c1 := math.Sincos(t1)
		x0, y0 := cx+rad*c0, cy+rad*s0
		x3, y3 := cx+rad*c1, cy+rad*s1
		x1, y1 := m.Apply(x0-dir*k*s0, y0+dir*k*c0)
		x2, y2 := m.Apply(x3+dir*k*s1, y3-dir*k*c1)
		x3, y3 = m.Apply(x3, y3)
		o.cubeTo(x1, y1, x2, y2, x3, y3)
	}
}

// bounds returns the box around every recorded point, control points
// included. ok is false for an empty outline.
func (o *outline) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, op := range o.ops {
		n := 0
		switch op.verb {
		case verbMove, verbLine:
			n = 1
		case verbCube:
			n = 3
		}
		for _, p := range op.pts[:n] {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
		ok = ok || n > 0
	}
	return minX, minY, maxX, maxY, ok
}

// replay feeds the outline to z with (ox, oy) as the rasterizer origin.
func (o *outline) replay(z *vector.Rasterizer, ox, oy float64) {
	pt := func(p [2]float64) (float32, float32) {
		return float32(p[0] - ox), float32(p[1] - oy)
	}
	for _, op := range o.ops {
		switch op.verb {
		case verbMove:
			z.MoveTo(pt(op.pts[0]))
		case verbLine:
			z.LineTo(pt(op.pts[0]))
		case verbCube:
			x1, y1 := pt(op.pts[0])
			x2, y2 := pt(op.pts[1])
			x3, y3 := pt(op.pts[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case verbClose:
			z.ClosePath()
		}
	}
}
