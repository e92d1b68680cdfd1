package main

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"shapeflow/internal/core"
	"shapeflow/internal/render"
	"shapeflow/internal/sims/bloom"
	pcore "shapeflow/pkg/core"
	"shapeflow/pkg/shapes"
)

type format int

const (
	formatSVG format = iota
	formatPNG
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return formatSVG, nil
	case ".png":
		return formatPNG, nil
	}
	return 0, fmt.Errorf("unsupported output %q: use .svg or .png", path)
}

type summary struct {
	Frame int
	Live  int
	Stats shapes.Stats
}

// capture runs ticks-1 headless ticks and draws the last one to w.
func capture(w io.Writer, cfg bloom.Config, ticks int, f format, scale float64) (summary, error) {
	b := bloom.New(cfg)
	for i := 1; i < ticks; i++ {
		b.Step(pcore.Discard)
	}

	size := b.Size()
	switch f {
	case formatSVG:
		doc := render.NewSVG(w, size.W, size.H, fmt.Sprintf("%s seed %d", b.Name(), b.Seed()))
		b.Step(doc)
		doc.End()
	case formatPNG:
		if scale <= 0 {
			scale = 1
		}
		gw := max(int(math.Round(float64(size.W)*scale)), 1)
		gh := max(int(math.Round(float64(size.H)*scale)), 1)
		r := render.NewRaster(core.NewByteGrid(gw, gh))
		r.SetView(scale, scale)
		b.Step(r)
		if err := render.WritePNG(w, r); err != nil {
			return summary{}, err
		}
	}

	pop := b.Population()
	return summary{Frame: b.LastTick().Frame, Live: pop.Len(), Stats: pop.Stats()}, nil
}
