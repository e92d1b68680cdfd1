//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"shapeflow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// statKeys are the read-only counters listed above the controls.
var statKeys = []string{"frame", "live", "peak", "spawned", "expired", "discarded"}

// HUD renders the stats and control panel to the right of the sketch view.
type HUD struct {
	sketch     core.Sketch
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	stats      []core.Parameter

	controls     []controlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the sketch with the given panel width.
func NewHUD(sk core.Sketch, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sketch: sk, width: width, title: buildTitle(sk)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sk.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = sk.(core.IntParameterSetter)
	h.floatSetter, _ = sk.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sketch.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.stats = nil
		return
	}
	h.snapshot = provider.Parameters()
	h.stats = h.stats[:0]
	for _, key := range statKeys {
		if p, ok := h.snapshot.Lookup(key); ok {
			h.stats = append(h.stats, p)
		}
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i, p := range h.stats {
		y := statsTop + i*statLine
		text.Draw(h.panel, p.Label, face, panelPadding, y, dimColor)
		bounds := text.BoundString(face, p.Value)
		text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
	}
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Adjust steps the control for key by direction steps. It backs the keyboard
// shortcuts.
func (h *HUD) Adjust(key string, direction int) bool {
	if h == nil {
		return false
	}
	for i := range h.controls {
		if h.controls[i].control.Key == key && h.controls[i].hasValue {
			return h.applyAdjustment(&h.controls[i], direction)
		}
	}
	return false
}

func buildTitle(sk core.Sketch) string {
	if sk == nil || sk.Name() == "" {
		return "Sketch"
	}
	name := sk.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 1, 64)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(state.minusRect):
			h.applyAdjustment(state, -1)
			return
		case image.Pt(px, my).In(state.plusRect):
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// target returns the value one step in direction, clamped to the lower bound.
func (state *controlState) target(direction int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	t := state.floatValue + float64(direction)*step
	if state.control.HasMin && t < state.control.Min {
		t = state.control.Min
	}
	if state.control.HasMax && t > state.control.Max {
		t = state.control.Max
	}
	return t
}

func (h *HUD) applyAdjustment(state *controlState, direction int) bool {
	if direction == 0 {
		return false
	}
	target := state.target(direction)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		v := int(math.Round(target))
		if !h.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue, state.floatValue, state.value = v, float64(v), strconv.Itoa(v)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		if !h.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue, state.value = target, strconv.FormatFloat(target, 'f', 1, 64)
	default:
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, valueColor)
		clr := valueColor
		if !state.hasValue {
			clr = dimColor
		}
		bounds := text.BoundString(face, state.value)
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, clr)
		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, valueColor
	if !enabled {
		bg, fg = buttonOffColor, dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	panelColor     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statLine       = 16
	statsTop       = panelPadding + headerBaseline + 24
	controlsTop    = statsTop + 6*statLine
)
