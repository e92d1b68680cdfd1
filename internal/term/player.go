package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"shapeflow/internal/core"
	"shapeflow/internal/render"
)

// ErrQuit is returned by Run when the user quits.
var ErrQuit = errors.New("term: quit")

// capStep is how much the [ and ] keys move the population cap.
const capStep = 100

// Player animates a sketch in a terminal using half-block cells.
type Player struct {
	screen tcell.Screen
	sketch core.Sketch
	clock  *core.FixedStep
	raster *render.Raster
	rows   int

	seed     int64
	paused   bool
	tickOnce bool

	now    func() time.Time
	logger *log.Logger
}

// NewPlayer prepares a player for sk on an initialized screen.
func NewPlayer(screen tcell.Screen, sk core.Sketch, tps int, seed int64) *Player {
	p := &Player{
		screen: screen,
		sketch: sk,
		clock:  core.NewFixedStep(tps),
		seed:   seed,
		now:    time.Now,
		logger: log.New(os.Stderr, "[term] ", log.LstdFlags),
	}
	p.fit()
	return p
}

// SetLogger replaces the player's logger.
func (p *Player) SetLogger(l *log.Logger) { p.logger = l }

// fit sizes the raster to the screen, keeping the bottom row for status.
func (p *Player) fit() {
	w, h := p.screen.Size()
	p.rows = max(h-1, 1)
	w = max(w, 1)
	p.raster = render.NewRaster(core.NewByteGrid(w, p.rows*2))
	s := p.sketch.Size()
	if s.W > 0 && s.H > 0 {
		p.raster.SetView(float64(w)/float64(s.W), float64(p.rows*2)/float64(s.H))
	}
}

// Raster exposes the frame buffer of the last drawn tick.
func (p *Player) Raster() *render.Raster { return p.raster }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// Seed returns the seed of the current run.
func (p *Player) Seed() int64 { return p.seed }

// HandleEvent applies a key or resize event. It returns ErrQuit on q, Esc or
// Ctrl-C.
func (p *Player) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.fit()
		p.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ErrQuit
		case tcell.KeyRune:
			return p.handleRune(ev.Rune())
		}
	}
	return nil
}

func (p *Player) handleRune(r rune) error {
	switch r {
	case 'q':
		return ErrQuit
	case ' ':
		p.paused = !p.paused
	case 'n':
		p.tickOnce = true
	case 'r':
		p.reset(p.seed)
	case 's':
		p.reset(p.now().UnixNano())
	case '[':
		p.adjustCap(-capStep)
	case ']':
		p.adjustCap(capStep)
	}
	return nil
}

func (p *Player) reset(seed int64) {
	p.seed = seed
	p.sketch.Reset(seed)
	p.clock.Reset()
	p.tickOnce = false
	p.logger.Printf("reset seed=%d", seed)
}

func (p *Player) adjustCap(delta int) {
	setter, ok := p.sketch.(core.IntParameterSetter)
	if !ok {
		return
	}
	provider, ok := p.sketch.(core.ParameterProvider)
	if !ok {
		return
	}
	param, ok := provider.Parameters().Lookup("max_shapes")
	if !ok {
		return
	}
	cur, err := strconv.Atoi(param.Value)
	if err != nil {
		return
	}
	if setter.SetIntParameter("max_shapes", max(cur+delta, 0)) {
		p.logger.Printf("max_shapes=%d", max(cur+delta, 0))
	}
}

// Frame advances the sketch when a tick is due (or a single step was
// requested while paused) and repaints the screen. It reports whether the
// sketch stepped.
func (p *Player) Frame() bool {
	stepped := false
	switch {
	case p.tickOnce:
		p.sketch.Step(p.raster)
		p.tickOnce = false
		stepped = true
	case !p.paused:
		for p.clock.ShouldStep() {
			p.sketch.Step(p.raster)
			stepped = true
		}
	}
	Paint(p.screen, p.raster, p.rows)
	p.status()
	p.screen.Show()
	return stepped
}

func (p *Player) status() {
	w, _ := p.screen.Size()
	line := fmt.Sprintf(" %s seed=%d", p.sketch.Name(), p.seed)
	if provider, ok := p.sketch.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"live", "frame", "max_shapes"} {
			if param, ok := snap.Lookup(key); ok {
				line += fmt.Sprintf(" %s=%s", key, param.Value)
			}
		}
	}
	if p.paused {
		line += " [paused]"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < w; x++ {
		p.screen.SetContent(x, p.rows, ' ', nil, style)
	}
	DrawText(p.screen, 0, p.rows, line, style)
}

// Run polls events and plays the sketch until ctx ends or the user quits.
// Quitting returns ErrQuit.
func (p *Player) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, p.screen, events)

	ticker := time.NewTicker(p.clock.Interval())
	defer ticker.Stop()
	p.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := p.HandleEvent(ev); err != nil {
				return err
			}
			if p.paused {
				p.Frame()
			}
		case <-ticker.C:
			p.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized, which
// closes events, or ctx ends.
func pollEvents(ctx context.Context, s tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
