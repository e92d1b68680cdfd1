//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"shapeflow/internal/core"
	"shapeflow/pkg/shapes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type populationProvider interface {
	Population() *shapes.Population
}

// Overlay draws debugging visuals over the sketch: key 1 toggles motion
// targets, key 2 the birth region.
type Overlay struct {
	sketch      core.Sketch
	scale       float64
	showTargets bool
	showBirth   bool
	pixel       *ebiten.Image
}

// NewOverlay constructs an overlay for sk drawn at the given view scale.
func NewOverlay(sk core.Sketch, scale float64) *Overlay {
	o := &Overlay{sketch: sk, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTargets = !o.showTargets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBirth = !o.showBirth
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sketch.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showBirth {
		o.drawBirthRegion(screen, size, scale)
	}
	if !o.showTargets {
		return
	}
	provider, ok := o.sketch.(populationProvider)
	if !ok {
		return
	}
	for _, s := range provider.Population().Shapes() {
		x, y := s.Position()
		x, y = x*scale, y*scale
		col := phaseColor(s.Phase())
		switch s.Phase() {
		case shapes.TranslateVertical, shapes.TranslateHorizontal:
			if s.Entering() {
				break
			}
			tx, ty := s.Target()
			if s.Phase() == shapes.TranslateVertical {
				ty = y / scale
			} else {
				tx = x / scale
			}
			o.drawLine(screen, x, y, tx*scale, ty*scale, 1, col)
			o.drawPoint(screen, tx*scale, ty*scale, 4, col)
		}
		o.drawPoint(screen, x, y, 3, col)
	}
}

func (o *Overlay) drawBirthRegion(screen *ebiten.Image, size core.Size, scale float64) {
	const lo, hi = 0.3, 0.7
	w, h := float64(size.W)*scale, float64(size.H)*scale
	col := color.RGBA{R: 90, G: 130, B: 170, A: 160}
	x0, x1, y0, y1 := w*lo, w*hi, h*lo, h*hi
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
	o.drawLine(screen, x1, y1, x0, y1, 1, col)
	o.drawLine(screen, x0, y1, x0, y0, 1, col)
}

func phaseColor(p shapes.Phase) color.RGBA {
	switch p {
	case shapes.TranslateVertical:
		return color.RGBA{R: 80, G: 200, B: 240, A: 200}
	case shapes.TranslateHorizontal:
		return color.RGBA{R: 240, G: 200, B: 80, A: 200}
	case shapes.MorphShape:
		return color.RGBA{R: 200, G: 90, B: 220, A: 200}
	default:
		return color.RGBA{R: 160, G: 160, B: 170, A: 160}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
