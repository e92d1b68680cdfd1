package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgPrecision is the fixed-point factor applied to coordinates, since svgo
// takes integer geometry. Each primitive group scales back by its inverse.
const svgPrecision = 100

// SVG is a Canvas that writes primitives as SVG elements.
type SVG struct {
	doc  *svg.SVG
	w, h int
	xf   stack

	fill        color.RGBA
	hasFill     bool
	stroke      color.RGBA
	hasStroke   bool
	strokeWidth float64
}

// NewSVG starts an SVG document of the given pixel size on w. Call End to
// close it.
func NewSVG(w io.Writer, width, height int, title string) *SVG {
	doc := svg.New(w)
	doc.Start(width, height)
	if title != "" {
		doc.Title(title)
	}
	return &SVG{doc: doc, w: width, h: height, xf: newStack(Identity)}
}

// End closes the document.
func (s *SVG) End() { s.doc.End() }

func (s *SVG) Push() { s.xf.push() }

func (s *SVG) Pop() { s.xf.pop() }

func (s *SVG) Translate(dx, dy float64) { s.xf.cur = s.xf.cur.Translate(dx, dy) }

func (s *SVG) Scale(sx, sy float64) { s.xf.cur = s.xf.cur.Scale(sx, sy) }

func (s *SVG) SetFill(c color.RGBA) { s.fill, s.hasFill = c, true }

func (s *SVG) NoFill() { s.hasFill = false }

func (s *SVG) SetStroke(c color.RGBA, width float64) {
	s.stroke, s.hasStroke, s.strokeWidth = c, true, width
}

func (s *SVG) NoStroke() { s.hasStroke = false }

// Clear paints a full-size background rectangle.
func (s *SVG) Clear(c color.RGBA) {
	s.xf.reset()
	s.doc.Rect(0, 0, s.w, s.h, "fill:"+svgColor(c))
}

func (s *SVG) Circle(diameter float64) {
	if diameter <= 0 || !s.paints() {
		return
	}
	s.begin()
	s.doc.Circle(0, 0, fixed(diameter/2), s.style())
	s.doc.Gend()
}

func (s *SVG) Rect(w, h float64) {
	if w <= 0 || h <= 0 || !s.paints() {
		return
	}
	s.begin()
	s.doc.Rect(fixed(-w/2), fixed(-h/2), fixed(w), fixed(h), s.style())
	s.doc.Gend()
}

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	if !s.hasStroke || s.strokeWidth <= 0 {
		return
	}
	s.begin()
	s.doc.Line(fixed(x1), fixed(y1), fixed(x2), fixed(y2),
		fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round", svgColor(s.stroke), fixed(s.strokeWidth)))
	s.doc.Gend()
}

func (s *SVG) paints() bool {
	return s.hasFill || (s.hasStroke && s.strokeWidth > 0)
}

// begin opens a group carrying the current transform.
func (s *SVG) begin() {
	m := s.xf.cur
	s.doc.Gtransform(fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g) scale(%g)",
		m[0], m[1], m[2], m[3], m[4], m[5], 1.0/svgPrecision))
}

func (s *SVG) style() string {
	fill := "none"
	if s.hasFill {
		fill = svgColor(s.fill)
	}
	if !s.hasStroke || s.strokeWidth <= 0 {
		return "fill:" + fill + ";stroke:none"
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", fill, svgColor(s.stroke), fixed(s.strokeWidth))
}

func fixed(v float64) int { return int(math.Round(v * svgPrecision)) }

func svgColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
