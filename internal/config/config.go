// Package config loads YAML run files for the sketch hosts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout. Absent keys leave the corresponding default
// in place, so every scalar is a pointer.
type File struct {
	Window     Window     `yaml:"window"`
	Playback   Playback   `yaml:"playback"`
	Population Population `yaml:"population"`
}

// Window holds the canvas and window settings.
type Window struct {
	Width  *int     `yaml:"width"`
	Height *int     `yaml:"height"`
	Title  string   `yaml:"title"`
	Scale  *float64 `yaml:"scale"`
}

// Playback holds the tick rate, seed and output backend.
type Playback struct {
	TPS     *int   `yaml:"tps"`
	Seed    *int64 `yaml:"seed"`
	Backend string `yaml:"backend"`
}

// Population holds the shape population tunables. Keys match the sketch's
// string overrides.
type Population struct {
	MaxShapes      *int     `yaml:"max_shapes"`
	InitialShapes  *int     `yaml:"initial_shapes"`
	MinBurst       *int     `yaml:"min_burst"`
	MaxBurst       *int     `yaml:"max_burst"`
	MinPoints      *int     `yaml:"min_points"`
	MaxPoints      *int     `yaml:"max_points"`
	MinCycle       *float64 `yaml:"min_cycle"`
	MaxCycle       *float64 `yaml:"max_cycle"`
	MinSizeRatio   *float64 `yaml:"min_size_ratio"`
	MaxSizeRatio   *float64 `yaml:"max_size_ratio"`
	SpawnIntervals []int    `yaml:"spawn_intervals"`
	Easing         string   `yaml:"easing"`
	Palette        []string `yaml:"palette"`
	Background     string   `yaml:"background"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML. Unknown keys are rejected. An empty document yields the
// zero File.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if f.Window.Width != nil && *f.Window.Width <= 0 {
		return File{}, fmt.Errorf("window.width %d must be positive", *f.Window.Width)
	}
	if f.Window.Height != nil && *f.Window.Height <= 0 {
		return File{}, fmt.Errorf("window.height %d must be positive", *f.Window.Height)
	}
	if f.Window.Scale != nil && *f.Window.Scale <= 0 {
		return File{}, fmt.Errorf("window.scale %g must be positive", *f.Window.Scale)
	}
	if f.Playback.TPS != nil && *f.Playback.TPS <= 0 {
		return File{}, fmt.Errorf("playback.tps %d must be positive", *f.Playback.TPS)
	}
	return f, nil
}

// Overrides flattens the canvas, seed and population settings into the
// key/value form accepted by sketch factories.
func (f File) Overrides() map[string]string {
	out := map[string]string{}
	putInt(out, "w", f.Window.Width)
	putInt(out, "h", f.Window.Height)
	if f.Playback.Seed != nil {
		out["seed"] = strconv.FormatInt(*f.Playback.Seed, 10)
	}

	p := f.Population
	putInt(out, "max_shapes", p.MaxShapes)
	putInt(out, "initial_shapes", p.InitialShapes)
	putInt(out, "min_burst", p.MinBurst)
	putInt(out, "max_burst", p.MaxBurst)
	putInt(out, "min_points", p.MinPoints)
	putInt(out, "max_points", p.MaxPoints)
	putFloat(out, "min_cycle", p.MinCycle)
	putFloat(out, "max_cycle", p.MaxCycle)
	putFloat(out, "min_size_ratio", p.MinSizeRatio)
	putFloat(out, "max_size_ratio", p.MaxSizeRatio)
	if len(p.SpawnIntervals) > 0 {
		parts := make([]string, len(p.SpawnIntervals))
		for i, iv := range p.SpawnIntervals {
			parts[i] = strconv.Itoa(iv)
		}
		out["spawn_intervals"] = strings.Join(parts, ",")
	}
	if p.Easing != "" {
		out["easing"] = p.Easing
	}
	if len(p.Palette) > 0 {
		out["palette"] = strings.Join(p.Palette, ",")
	}
	if p.Background != "" {
		out["background"] = p.Background
	}
	return out
}

func putInt(m map[string]string, key string, v *int) {
	if v != nil {
		m[key] = strconv.Itoa(*v)
	}
}

func putFloat(m map[string]string, key string, v *float64) {
	if v != nil {
		m[key] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}
