package term

import (
	"context"
	"errors"
	"image/color"
	"io"
	"log"
	"strconv"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"shapeflow/internal/core"
	"shapeflow/internal/render"
	pcore "shapeflow/pkg/core"
)

// mockScreen is a minimal tcell.Screen that records cell contents.
type mockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
	shows         int
	pending       []tcell.Event
}

type cell struct {
	r     rune
	style tcell.Style
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{width: w, height: h, cells: map[[2]int]cell{}}
}

func (m *mockScreen) Size() (int, int) { return m.width, m.height }
func (m *mockScreen) Show()            { m.shows++ }
func (m *mockScreen) Sync()            {}
func (m *mockScreen) Clear()           { clear(m.cells) }

// PollEvent hands out the pending events, then nil as a finalized screen does.
func (m *mockScreen) PollEvent() tcell.Event {
	if len(m.pending) == 0 {
		return nil
	}
	ev := m.pending[0]
	m.pending = m.pending[1:]
	return ev
}

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

func (m *mockScreen) row(y int) string {
	out := make([]rune, 0, m.width)
	for x := 0; x < m.width; x++ {
		out = append(out, m.cells[[2]int{x, y}].r)
	}
	return string(out)
}

// stubSketch counts steps and exposes a max_shapes parameter.
type stubSketch struct {
	size   core.Size
	steps  int
	resets []int64
	cap    int
}

func (s *stubSketch) Name() string        { return "stub" }
func (s *stubSketch) Size() core.Size     { return s.size }
func (s *stubSketch) Resize(sz core.Size) { s.size = sz }
func (s *stubSketch) Reset(seed int64)    { s.resets = append(s.resets, seed); s.steps = 0 }
func (s *stubSketch) Step(c pcore.Canvas) { s.steps++; c.Clear(color.RGBA{A: 0xff}) }

func (s *stubSketch) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Population",
		Params: []core.Parameter{{Key: "max_shapes", Label: "Cap", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cap)}},
	}}}
}

func (s *stubSketch) SetIntParameter(key string, v int) bool {
	if key != "max_shapes" {
		return false
	}
	s.cap = v
	return true
}

func newTestPlayer(w, h int) (*Player, *mockScreen, *stubSketch) {
	scr := newMockScreen(w, h)
	sk := &stubSketch{size: core.Size{W: 100, H: 100}, cap: 150}
	p := NewPlayer(scr, sk, 1, 7)
	p.SetLogger(log.New(io.Discard, "", 0))
	return p, scr, sk
}

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestPaintHalfBlocks(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	r := render.NewRaster(core.NewByteGrid(2, 4))
	r.Clear(color.RGBA{A: 0xff})
	r.SetStroke(red, 1)
	r.Line(0, 0.5, 2, 0.5)
	r.SetStroke(blue, 1)
	r.Line(0, 1.5, 2, 1.5)

	scr := newMockScreen(2, 3)
	Paint(scr, r, 2)

	top := scr.cells[[2]int{0, 0}]
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0, 0)).Background(tcell.NewRGBColor(0, 0, 0xff))
	if top.r != upperHalf || top.style != want {
		t.Fatalf("top cell = %q %v, want red over blue", top.r, top.style)
	}
	bottom := scr.cells[[2]int{1, 1}]
	black := tcell.NewRGBColor(0, 0, 0)
	if bottom.style != tcell.StyleDefault.Foreground(black).Background(black) {
		t.Fatalf("bottom cell should be background, got %v", bottom.style)
	}
	if _, ok := scr.cells[[2]int{0, 2}]; ok {
		t.Fatalf("status row must not be painted")
	}
}

func TestPlayerQuitKeys(t *testing.T) {
	p, _, _ := newTestPlayer(10, 5)
	for _, ev := range []tcell.Event{
		runeKey('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if err := p.HandleEvent(ev); !errors.Is(err, ErrQuit) {
			t.Fatalf("event %v returned %v, want ErrQuit", ev, err)
		}
	}
}

func TestPlayerPauseAndSingleStep(t *testing.T) {
	p, scr, sk := newTestPlayer(10, 5)
	if !p.Frame() || sk.steps != 1 {
		t.Fatalf("first frame should step once, steps=%d", sk.steps)
	}
	if err := p.HandleEvent(runeKey(' ')); err != nil || !p.Paused() {
		t.Fatalf("space should pause (err=%v)", err)
	}
	if p.Frame() {
		t.Fatalf("paused player stepped")
	}
	p.HandleEvent(runeKey('n'))
	if !p.Frame() || sk.steps != 2 {
		t.Fatalf("n should step exactly once, steps=%d", sk.steps)
	}
	if p.Frame() {
		t.Fatalf("single step repeated")
	}
	if scr.shows != 4 {
		t.Fatalf("shows = %d, want 4", scr.shows)
	}
	if got := scr.row(4); got[:6] != " stub " {
		t.Fatalf("status row = %q", got)
	}
}

func TestPlayerResetKeys(t *testing.T) {
	p, _, sk := newTestPlayer(10, 5)
	p.now = func() time.Time { return time.Unix(0, 99) }
	p.HandleEvent(runeKey('r'))
	p.HandleEvent(runeKey('s'))
	if len(sk.resets) != 2 || sk.resets[0] != 7 || sk.resets[1] != 99 {
		t.Fatalf("resets = %v, want [7 99]", sk.resets)
	}
	if p.Seed() != 99 {
		t.Fatalf("seed = %d", p.Seed())
	}
}

func TestPlayerAdjustsCap(t *testing.T) {
	p, _, sk := newTestPlayer(10, 5)
	p.HandleEvent(runeKey(']'))
	if sk.cap != 250 {
		t.Fatalf("cap = %d, want 250", sk.cap)
	}
	p.HandleEvent(runeKey('['))
	p.HandleEvent(runeKey('['))
	p.HandleEvent(runeKey('['))
	if sk.cap != 0 {
		t.Fatalf("cap = %d, want clamp at 0", sk.cap)
	}
}

func TestPlayerResizeRebuildsRaster(t *testing.T) {
	p, scr, _ := newTestPlayer(10, 5)
	scr.width, scr.height = 20, 9
	p.HandleEvent(tcell.NewEventResize(20, 9))
	g := p.Raster().Grid()
	if g.W != 20 || g.H != 16 {
		t.Fatalf("raster = %dx%d, want 20x16", g.W, g.H)
	}
}

func TestPollEventsStopsWithContext(t *testing.T) {
	scr := newMockScreen(10, 5)
	scr.pending = []tcell.Event{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		pollEvents(ctx, scr, events)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller blocked on a channel nobody reads")
	}
}

func TestPollEventsClosesOnFinalize(t *testing.T) {
	scr := newMockScreen(10, 5)
	scr.pending = []tcell.Event{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)}
	events := make(chan tcell.Event, 1)

	pollEvents(context.Background(), scr, events)

	if ev, ok := <-events; !ok || ev == nil {
		t.Fatal("expected the pending event before close")
	}
	if _, ok := <-events; ok {
		t.Fatal("events should be closed after the screen finalizes")
	}
}
