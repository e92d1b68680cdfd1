package shapes

import (
	"fmt"
	"image/color"
)

// recorder is a Canvas that logs every call as a short string.
type recorder struct {
	ops []string
}

func (r *recorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) Push() { r.log("push") }

func (r *recorder) Pop() { r.log("pop") }

func (r *recorder) Translate(dx, dy float64) { r.log("translate %.2f %.2f", dx, dy) }

func (r *recorder) Scale(sx, sy float64) { r.log("scale %.2f %.2f", sx, sy) }

func (r *recorder) SetFill(c color.RGBA) { r.log("fill %s", HexColor(c)) }

func (r *recorder) NoFill() { r.log("nofill") }

func (r *recorder) SetStroke(c color.RGBA, w float64) { r.log("stroke %s %.2f", HexColor(c), w) }

func (r *recorder) NoStroke() { r.log("nostroke") }

func (r *recorder) Circle(d float64) { r.log("circle %.2f", d) }

func (r *recorder) Rect(w, h float64) { r.log("rect %.2f %.2f", w, h) }

func (r *recorder) Line(x1, y1, x2, y2 float64) { r.log("line %.2f %.2f %.2f %.2f", x1, y1, x2, y2) }

func (r *recorder) Clear(c color.RGBA) { r.log("clear %s", HexColor(c)) }
