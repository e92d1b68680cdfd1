package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"shapeflow/internal/render"
)

// upperHalf shows two raster rows per cell: the top row as the foreground,
// the bottom row as the background.
const upperHalf = '▀'

// Screen is the subset of tcell.Screen the painter writes to.
type Screen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Paint draws r onto the first rows of s. Raster rows beyond 2*rows are
// dropped.
func Paint(s Screen, r *render.Raster, rows int) {
	g := r.Grid()
	palette := r.Palette()
	if len(palette) == 0 {
		return
	}
	w, _ := s.Size()
	for cy := 0; cy < rows && cy*2 < g.H; cy++ {
		for x := 0; x < g.W && x < w; x++ {
			top := cellColor(palette, g.At(x, cy*2))
			bottom := cellColor(palette, g.At(x, cy*2+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.SetContent(x, cy, upperHalf, nil, style)
		}
	}
}

// DrawText writes s on row y starting at column x.
func DrawText(scr Screen, x, y int, s string, style tcell.Style) {
	w, _ := scr.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

func cellColor(palette []color.RGBA, idx uint8) tcell.Color {
	if int(idx) >= len(palette) {
		idx = uint8(len(palette) - 1)
	}
	c := palette[idx]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
