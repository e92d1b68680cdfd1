//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteSubImage is the 1x1 source texture for vertex colored triangles.
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// EbitenCanvas is a Canvas that tessellates primitives with vector.Path and
// draws them onto an ebiten image with antialiasing.
type EbitenCanvas struct {
	dst   *ebiten.Image
	cur   ebiten.GeoM
	saved []ebiten.GeoM

	fill        color.RGBA
	hasFill     bool
	stroke      color.RGBA
	hasStroke   bool
	strokeWidth float64

	vs []ebiten.Vertex
	is []uint16
}

// NewEbitenCanvas draws onto dst.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst}
}

// SetTarget retargets the canvas, e.g. after a resize.
func (c *EbitenCanvas) SetTarget(dst *ebiten.Image) { c.dst = dst }

// Target returns the image being drawn onto.
func (c *EbitenCanvas) Target() *ebiten.Image { return c.dst }

func (c *EbitenCanvas) Push() { c.saved = append(c.saved, c.cur) }

func (c *EbitenCanvas) Pop() {
	if len(c.saved) == 0 {
		c.cur.Reset()
		return
	}
	c.cur = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// Translate and Scale apply in local space, before the current transform.
func (c *EbitenCanvas) Translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	m.Concat(c.cur)
	c.cur = m
}

func (c *EbitenCanvas) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	m.Concat(c.cur)
	c.cur = m
}

func (c *EbitenCanvas) SetFill(clr color.RGBA) { c.fill, c.hasFill = clr, true }

func (c *EbitenCanvas) NoFill() { c.hasFill = false }

func (c *EbitenCanvas) SetStroke(clr color.RGBA, width float64) {
	c.stroke, c.hasStroke, c.strokeWidth = clr, true, width
}

func (c *EbitenCanvas) NoStroke() { c.hasStroke = false }

func (c *EbitenCanvas) Clear(clr color.RGBA) {
	c.cur.Reset()
	c.saved = c.saved[:0]
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) Circle(diameter float64) {
	if diameter <= 0 {
		return
	}
	var p vector.Path
	p.Arc(0, 0, float32(diameter/2), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	c.draw(&p, true)
}

func (c *EbitenCanvas) Rect(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	hw, hh := float32(w/2), float32(h/2)
	var p vector.Path
	p.MoveTo(-hw, -hh)
	p.LineTo(hw, -hh)
	p.LineTo(hw, hh)
	p.LineTo(-hw, hh)
	p.Close()
	c.draw(&p, true)
}

func (c *EbitenCanvas) Line(x1, y1, x2, y2 float64) {
	var p vector.Path
	p.MoveTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	c.draw(&p, false)
}

func (c *EbitenCanvas) draw(p *vector.Path, closed bool) {
	if closed && c.hasFill {
		c.vs, c.is = p.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
		c.submit(c.fill)
	}
	if c.hasStroke && c.strokeWidth > 0 {
		op := &vector.StrokeOptions{Width: float32(c.strokeWidth), LineJoin: vector.LineJoinMiter}
		if !closed {
			op.LineCap = vector.LineCapRound
		}
		c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], op)
		c.submit(c.stroke)
	}
}

func (c *EbitenCanvas) submit(clr color.RGBA) {
	if len(c.is) == 0 {
		return
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range c.vs {
		x, y := c.cur.Apply(float64(c.vs[i].DstX), float64(c.vs[i].DstY))
		c.vs[i].DstX, c.vs[i].DstY = float32(x), float32(y)
		c.vs[i].SrcX, c.vs[i].SrcY = 1, 1
		c.vs[i].ColorR, c.vs[i].ColorG, c.vs[i].ColorB, c.vs[i].ColorA = r, g, b, a
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
