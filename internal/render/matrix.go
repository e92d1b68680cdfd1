package render

import "math"

// Matrix is a 2D affine transform laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Mul returns m * o, the transform that applies o first and then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Translate returns m with a local translation appended.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return m.Mul(Matrix{1, 0, 0, 1, dx, dy})
}

// Scale returns m with a local scale appended.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{sx, 0, 0, sy, 0, 0})
}

// Apply maps the local point (x, y) to device space.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 { return m[0]*m[3] - m[2]*m[1] }

// Invert returns the inverse transform. ok is false for singular matrices.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Identity, false
	}
	invDet := 1 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}, true
}

// stack is the push/pop transform stack shared by the canvas backends.
type stack struct {
	base  Matrix
	cur   Matrix
	saved []Matrix
}

func newStack(base Matrix) stack {
	return stack{base: base, cur: base}
}

func (s *stack) push() { s.saved = append(s.saved, s.cur) }

func (s *stack) pop() {
	if len(s.saved) == 0 {
		s.cur = s.base
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stack) reset() {
	s.cur = s.base
	s.saved = s.saved[:0]
}
