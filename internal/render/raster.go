package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"shapeflow/internal/core"
)

const (
	noPaint = -1

	// coverageThreshold is the mask alpha at which a cell takes the paint.
	// Edges are never blended.
	coverageThreshold = 0x7f

	// kappa places cubic control points for a quarter circle.
	kappa = 0.5522847498307936
)

// Raster is a Canvas that rasterizes primitives into a ByteGrid of palette
// indices. Outlines go through an x/image/vector rasterizer; a cell is
// painted when at least half of it is covered.
type Raster struct {
	grid    *core.ByteGrid
	dst     *image.Paletted
	palette []color.RGBA
	xf      stack

	fill        int
	stroke      int
	strokeWidth float64

	z    *vector.Rasterizer
	mask *image.Alpha
	path outline
}

// NewRaster creates a raster drawing into grid with an identity view.
func NewRaster(grid *core.ByteGrid) *Raster {
	return &Raster{
		grid: grid,
		dst: &image.Paletted{
			Pix:    grid.Cells(),
			Stride: grid.W,
			Rect:   image.Rect(0, 0, grid.W, grid.H),
		},
		xf:     newStack(Identity),
		fill:   noPaint,
		stroke: noPaint,
	}
}

// SetView scales canvas units onto grid cells, e.g. a 800x600 canvas on a
// 160x120 grid uses SetView(0.2, 0.2).
func (r *Raster) SetView(sx, sy float64) {
	r.xf = newStack(Identity.Scale(sx, sy))
}

// Grid returns the backing grid.
func (r *Raster) Grid() *core.ByteGrid { return r.grid }

// Palette returns the colors referenced by grid values.
func (r *Raster) Palette() []color.RGBA { return r.palette }

// Paletted returns the grid as a paletted image sharing its cells.
func (r *Raster) Paletted() *image.Paletted {
	pal := make(color.Palette, len(r.palette))
	for i, c := range r.palette {
		pal[i] = c
	}
	r.dst.Palette = pal
	return r.dst
}

func (r *Raster) Push() { r.xf.push() }

func (r *Raster) Pop() { r.xf.pop() }

func (r *Raster) Translate(dx, dy float64) { r.xf.cur = r.xf.cur.Translate(dx, dy) }

func (r *Raster) Scale(sx, sy float64) { r.xf.cur = r.xf.cur.Scale(sx, sy) }

func (r *Raster) SetFill(c color.RGBA) { r.fill = int(r.index(c)) }

func (r *Raster) NoFill() { r.fill = noPaint }

func (r *Raster) SetStroke(c color.RGBA, width float64) {
	r.stroke = int(r.index(c))
	r.strokeWidth = width
}

func (r *Raster) NoStroke() { r.stroke = noPaint }

// Clear fills the grid with c and restarts the palette with c at index 0.
func (r *Raster) Clear(c color.RGBA) {
	r.palette = append(r.palette[:0], c)
	r.grid.Fill(0)
	r.xf.reset()
	r.fill, r.stroke = noPaint, noPaint
}

// Circle draws a circle of the given diameter centered on the local origin.
func (r *Raster) Circle(diameter float64) {
	radius := diameter / 2
	if radius <= 0 {
		return
	}
	m := r.xf.cur
	if r.fill != noPaint {
		r.path.reset()
		r.path.ellipse(m, radius, false)
		r.paint(uint8(r.fill))
	}
	if r.stroke != noPaint && r.strokeWidth > 0 {
		half := r.strokeWidth / 2
		r.path.reset()
		r.path.ellipse(m, radius+half, false)
		if inner := radius - half; inner > 0 {
			r.path.ellipse(m, inner, true)
		}
		r.paint(uint8(r.stroke))
	}
}

// Rect draws a w by h rectangle centered on the local origin.
func (r *Raster) Rect(w, h float64) {
	hw, hh := w/2, h/2
	if hw <= 0 || hh <= 0 {
		return
	}
	m := r.xf.cur
	if r.fill != noPaint {
		r.path.reset()
		r.path.box(m, hw, hh, false)
		r.paint(uint8(r.fill))
	}
	if r.stroke != noPaint && r.strokeWidth > 0 {
		half := r.strokeWidth / 2
		r.path.reset()
		r.path.box(m, hw+half, hh+half, false)
		if iw, ih := hw-half, hh-half; iw > 0 && ih > 0 {
			r.path.box(m, iw, ih, true)
		}
		r.paint(uint8(r.stroke))
	}
}

// Line draws a stroked segment with round caps. The width is measured in
// device cells and never drops below one cell.
func (r *Raster) Line(x1, y1, x2, y2 float64) {
	if r.stroke == noPaint || r.strokeWidth <= 0 {
		return
	}
	m := r.xf.cur
	ax, ay := m.Apply(x1, y1)
	bx, by := m.Apply(x2, y2)
	half := math.Max(r.strokeWidth/2*math.Sqrt(math.Abs(m.Det())), 0.5)

	r.path.reset()
	r.path.segment(ax, ay, bx, by, half)
	r.paint(uint8(r.stroke))
}

// paint rasterizes the pending outline over its device bounds and writes v
// into every sufficiently covered cell.
func (r *Raster) paint(v uint8) {
	minX, minY, maxX, maxY, ok := r.path.bounds()
	if !ok {
		return
	}
	b := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(r.dst.Rect)
	if b.Empty() {
		return
	}
	w, h := b.Dx(), b.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	r.z.DrawOp = draw.Src
	r.path.replay(r.z, float64(b.Min.X), float64(b.Min.Y))

	mask := r.maskFor(w, h)
	r.z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a >= coverageThreshold {
				r.dst.SetColorIndex(b.Min.X+x, b.Min.Y+y, v)
			}
		}
	}
}

func (r *Raster) maskFor(w, h int) *image.Alpha {
	if r.mask == nil || cap(r.mask.Pix) < w*h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return r.mask
	}
	r.mask.Pix = r.mask.Pix[:w*h]
	r.mask.Stride = w
	r.mask.Rect = image.Rect(0, 0, w, h)
	return r.mask
}

// index returns the palette slot for c, adding it when there is room and
// falling back to the nearest existing color otherwise.
func (r *Raster) index(c color.RGBA) uint8 {
	for i, p := range r.palette {
		if p == c {
			return uint8(i)
		}
	}
	if len(r.palette) < 256 {
		r.palette = append(r.palette, c)
		return uint8(len(r.palette) - 1)
	}
	best, bestDist := 0, math.MaxInt
	for i, p := range r.palette {
		dr, dg, db := int(p.R)-int(c.R), int(p.G)-int(c.G), int(p.B)-int(c.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}
