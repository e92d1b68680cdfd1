package shapes

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the canvas extent in canvas units.
type Size struct {
	W, H float64
}

// Config holds the tunables of a shape population. Ranges are half open:
// [Min, Max).
type Config struct {
	Palette    []color.RGBA
	Background color.RGBA

	// MinSizeRatio and MaxSizeRatio bound a shape's target size as a fraction
	// of the canvas width.
	MinSizeRatio float64
	MaxSizeRatio float64

	MinPoints int
	MaxPoints int

	MinCycleTicks float64
	MaxCycleTicks float64

	// SpawnIntervals are the candidates for the per-tick spawn modulus.
	SpawnIntervals []int
	MinBurst       int
	MaxBurst       int

	// MaxShapes caps the live population. Spawns beyond it are dropped.
	// Zero disables the cap.
	MaxShapes     int
	InitialShapes int

	Easing string
}

// DefaultPalette is the stock four color palette.
var DefaultPalette = []color.RGBA{
	{R: 0xf7, G: 0x17, B: 0x35, A: 0xff},
	{R: 0xf7, G: 0xd0, B: 0x02, A: 0xff},
	{R: 0x1a, G: 0x53, B: 0xc0, A: 0xff},
	{R: 0x23, G: 0x23, B: 0x23, A: 0xff},
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Palette:        append([]color.RGBA(nil), DefaultPalette...),
		Background:     color.RGBA{A: 0xff},
		MinSizeRatio:   0.01,
		MaxSizeRatio:   0.05,
		MinPoints:      2,
		MaxPoints:      5,
		MinCycleTicks:  20,
		MaxCycleTicks:  50,
		SpawnIntervals: []int{15, 30},
		MinBurst:       1,
		MaxBurst:       30,
		MaxShapes:      1500,
		InitialShapes:  1,
		Easing:         DefaultEasing,
	}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	if c.MinSizeRatio <= 0 || c.MaxSizeRatio < c.MinSizeRatio {
		return fmt.Errorf("size ratio range [%g, %g) is invalid", c.MinSizeRatio, c.MaxSizeRatio)
	}
	if c.MinPoints < 0 || c.MaxPoints <= c.MinPoints {
		return fmt.Errorf("action point range [%d, %d) is empty", c.MinPoints, c.MaxPoints)
	}
	if c.MinCycleTicks <= 0 || c.MaxCycleTicks < c.MinCycleTicks {
		return fmt.Errorf("cycle range [%g, %g) is invalid", c.MinCycleTicks, c.MaxCycleTicks)
	}
	if len(c.SpawnIntervals) == 0 {
		return errors.New("no spawn intervals")
	}
	for _, iv := range c.SpawnIntervals {
		if iv <= 0 {
			return fmt.Errorf("spawn interval %d must be positive", iv)
		}
	}
	if c.MinBurst < 0 || c.MaxBurst <= c.MinBurst {
		return fmt.Errorf("burst range [%d, %d) is empty", c.MinBurst, c.MaxBurst)
	}
	if c.MaxShapes < 0 {
		return fmt.Errorf("max shapes %d must not be negative", c.MaxShapes)
	}
	if c.InitialShapes < 0 {
		return fmt.Errorf("initial shapes %d must not be negative", c.InitialShapes)
	}
	if _, ok := Easing(c.Easing); !ok {
		return fmt.Errorf("unknown easing %q (have %s)", c.Easing, strings.Join(EasingNames(), ", "))
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values leave the default in place, as do range
// overrides that would leave their range empty.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays string key/value pairs onto c.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["max_shapes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxShapes = parsed
		}
	}
	if v, ok := cfg["initial_shapes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.InitialShapes = parsed
		}
	}
	applyIntRange(cfg, "min_burst", "max_burst", &c.MinBurst, &c.MaxBurst)
	applyIntRange(cfg, "min_points", "max_points", &c.MinPoints, &c.MaxPoints)
	applyFloatRange(cfg, "min_cycle", "max_cycle", &c.MinCycleTicks, &c.MaxCycleTicks)
	applyFloatRange(cfg, "min_size_ratio", "max_size_ratio", &c.MinSizeRatio, &c.MaxSizeRatio)
	if v, ok := cfg["spawn_intervals"]; ok {
		var intervals []int
		for _, field := range strings.Split(v, ",") {
			parsed, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || parsed <= 0 {
				intervals = nil
				break
			}
			intervals = append(intervals, parsed)
		}
		if len(intervals) > 0 {
			c.SpawnIntervals = intervals
		}
	}
	if v, ok := cfg["easing"]; ok {
		if _, known := Easing(v); known {
			c.Easing = v
		}
	}
	if v, ok := cfg["palette"]; ok {
		if palette, err := ParsePalette(strings.Split(v, ",")); err == nil && len(palette) > 0 {
			c.Palette = palette
		}
	}
	if v, ok := cfg["background"]; ok {
		if bg, err := ParseColor(v); err == nil {
			c.Background = bg
		}
	}
}

// applyIntRange overlays the min and max keys of a half-open [lo, hi) range.
// When the result would be empty both overrides are dropped.
func applyIntRange(cfg map[string]string, minKey, maxKey string, lo, hi *int) {
	nlo, nhi := *lo, *hi
	if v, ok := cfg[minKey]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			nlo = parsed
		}
	}
	if v, ok := cfg[maxKey]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			nhi = parsed
		}
	}
	if nhi > nlo {
		*lo, *hi = nlo, nhi
	}
}

// applyFloatRange is applyIntRange for positive float ranges, where lo == hi
// is allowed.
func applyFloatRange(cfg map[string]string, minKey, maxKey string, lo, hi *float64) {
	nlo, nhi := *lo, *hi
	if v, ok := cfg[minKey]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			nlo = parsed
		}
	}
	if v, ok := cfg[maxKey]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			nhi = parsed
		}
	}
	if nhi >= nlo {
		*lo, *hi = nlo, nhi
	}
}

// ParseColor parses a "#rrggbb" (or "#rgb") hex color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParsePalette parses a list of hex colors. Blank entries are skipped.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		if strings.TrimSpace(h) == "" {
			continue
		}
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
