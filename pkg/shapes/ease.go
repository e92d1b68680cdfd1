package shapes

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultEasing names the easing used when Config.Easing is empty.
const DefaultEasing = "inOutExpo"

// EaseInOutExpo remaps normalized time x in [0, 1] onto an exponential
// slow-in/slow-out curve. Inputs outside [0, 1] are clamped.
func EaseInOutExpo(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}

// InOutExpo is EaseInOutExpo in gween's TweenFunc form: t is the elapsed time,
// b the begin value, c the change and d the duration. Unlike ease.InOutExpo it
// has no end offset, so it never leaves [b, b+c].
func InOutExpo(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(EaseInOutExpo(float64(t)/float64(d)))
}

// easings lists the curves a config may select. Curves that overshoot their
// end points (elastic, back) are left out so interpolated sizes stay inside
// their [from, to] range.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inOutExpo":  InOutExpo,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inCirc":     ease.InCirc,
	"outCirc":    ease.OutCirc,
	"inOutCirc":  ease.InOutCirc,
	"outBounce":  ease.OutBounce,
}

// Easing resolves an easing by name. The empty name resolves to the default.
func Easing(name string) (ease.TweenFunc, bool) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns the selectable easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
