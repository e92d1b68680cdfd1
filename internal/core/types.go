package core

import (
	"sort"

	pcore "shapeflow/pkg/core"
)

// Size describes the dimensions of a sketch canvas in pixels.
type Size struct {
	W int
	H int
}

// Sketch defines the minimal contract an animated sketch must implement.
// Step advances the sketch by one tick and draws that tick's frame to c.
type Sketch interface {
	Name() string
	Size() Size
	Resize(s Size)
	Reset(seed int64)
	Step(c pcore.Canvas)
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) Sketch

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry of available sketch factories.
func Sketches() map[string]Factory {
	return sketches
}

// SketchNames lists the registered sketch names in sorted order.
func SketchNames() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
