//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// RasterPainter uploads a Raster into an ebiten image for the pixelated
// preview mode.
type RasterPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewRasterPainter allocates a painter for a w*h raster.
func NewRasterPainter(w, h int) *RasterPainter {
	rp := &RasterPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	rp.img = ebiten.NewImage(w, h)
	return rp
}

// Blit uploads the raster cells and draws them scaled onto dst.
func (rp *RasterPainter) Blit(dst *ebiten.Image, r *Raster, scale float64) {
	g := r.Grid()
	if g.W != rp.w || g.H != rp.h {
		return
	}
	fillPaletteRGBA(rp.buf, g.Cells(), r.Palette())
	rp.img.WritePixels(rp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(rp.img, op)
}

// Size returns the dimensions of the underlying image.
func (rp *RasterPainter) Size() (int, int) { return rp.w, rp.h }
