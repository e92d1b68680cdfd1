package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image converts the raster's palette indices into an RGBA image.
func Image(r *Raster) *image.RGBA {
	g := r.Grid()
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillPaletteRGBA(img.Pix, g.Cells(), r.Palette())
	return img
}

// WritePNG encodes the raster as an indexed PNG. A raster that was never
// cleared has no palette and is written as transparent RGBA.
func WritePNG(w io.Writer, r *Raster) error {
	var img image.Image = r.Paletted()
	if len(r.Palette()) == 0 {
		img = Image(r)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
