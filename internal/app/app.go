//go:build ebiten

package app

import (
	"image/color"
	"log"
	"os"
	"time"

	"shapeflow/internal/core"
	"shapeflow/internal/render"
	"shapeflow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width of the stats panel in pixels.
const hudWidth = 220

// pixelCell is the raster cell size, in canvas units, of the pixelated preview.
const pixelCell = 4

// Game adapts a core sketch to the ebiten.Game interface. The sketch draws
// into an offscreen frame during Update; Draw only composites.
type Game struct {
	sketch  core.Sketch
	frame   *ebiten.Image
	canvas  *render.EbitenCanvas
	raster  *render.Raster
	painter *render.RasterPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    float64
	paused   bool
	tickOnce bool
	seed     int64
	logger   *log.Logger
}

// New constructs a Game for the provided sketch.
func New(sk core.Sketch, cfg *Config) *Game {
	g := &Game{
		sketch:  sk,
		overlay: ui.NewOverlay(sk, cfg.Scale),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		logger:  log.New(os.Stderr, "[app] ", log.LstdFlags),
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sk, hudWidth)
	}
	size := sk.Size()
	if cfg.Pixelated {
		w, h := max(size.W/pixelCell, 1), max(size.H/pixelCell, 1)
		g.raster = render.NewRaster(core.NewByteGrid(w, h))
		g.raster.SetView(1.0/pixelCell, 1.0/pixelCell)
		g.painter = render.NewRasterPainter(w, h)
	} else {
		g.frame = ebiten.NewImage(size.W, size.H)
		g.canvas = render.NewEbitenCanvas(g.frame)
	}
	return g
}

// Reset reinitializes the sketch with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sketch.Reset(seed)
	g.tickOnce = false
	g.logger.Printf("reset seed=%d", seed)
}

// Update handles per-frame logic and advances the sketch.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.hud.Adjust("max_shapes", -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.hud.Adjust("max_shapes", 1)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		if g.raster != nil {
			g.sketch.Step(g.raster)
		} else {
			g.sketch.Step(g.canvas)
		}
		g.tickOnce = false
	}
	return nil
}

// Draw composites the last frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.raster != nil {
		g.painter.Blit(screen, g.raster, g.scale*pixelCell)
	} else {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.scale, g.scale)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.frame, op)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.viewHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.viewHeight()
}

func (g *Game) viewWidth() int {
	return int(float64(g.sketch.Size().W) * g.scale)
}

func (g *Game) viewHeight() int {
	return int(float64(g.sketch.Size().H) * g.scale)
}
