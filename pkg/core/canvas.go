package core

import "image/color"

// Canvas is the rendering backend contract. Shapes are drawn through it in
// immediate mode: a transform stack, the current fill and stroke, and three
// primitives. Circle and Rect are centered on the current origin.
type Canvas interface {
	Push()
	Pop()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	SetFill(c color.RGBA)
	NoFill()
	SetStroke(c color.RGBA, width float64)
	NoStroke()

	Circle(diameter float64)
	Rect(w, h float64)
	Line(x1, y1, x2, y2 float64)

	// Clear paints the whole target with c. Hosts call it once per tick
	// before any shape renders.
	Clear(c color.RGBA)
}

type discard struct{}

// Discard is a Canvas that drops every call. Headless runs tick through it.
var Discard Canvas = discard{}

func (discard) Push()                                   {}
func (discard) Pop()                                    {}
func (discard) Translate(float64, float64)              {}
func (discard) Scale(float64, float64)                  {}
func (discard) SetFill(color.RGBA)                      {}
func (discard) NoFill()                                 {}
func (discard) SetStroke(color.RGBA, float64)           {}
func (discard) NoStroke()                               {}
func (discard) Circle(float64)                          {}
func (discard) Rect(float64, float64)                   {}
func (discard) Line(float64, float64, float64, float64) {}
func (discard) Clear(color.RGBA)                        {}
