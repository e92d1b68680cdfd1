package app

import (
	"flag"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"shapeflow/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sketch     string
	Backend    string
	ConfigPath string
	Title      string
	Width      int
	Height     int
	Scale      float64
	TPS        int
	Seed       int64
	HUD        bool
	Pixelated  bool
	Sets       KV
}

// NewConfig returns a Config populated with sensible defaults. Zero Width and
// Height keep the sketch's own size.
func NewConfig() *Config {
	return &Config{Sketch: "shapes", Backend: "gui", Scale: 1, TPS: 60, Seed: 42, HUD: true, Sets: KV{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sketch, "sketch", c.Sketch, "sketch to run")
	fs.StringVar(&c.Backend, "backend", c.Backend, "gui or term")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML configuration file")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width override")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height override")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sketch reset")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the stats panel")
	fs.BoolVar(&c.Pixelated, "pixelated", c.Pixelated, "preview through the raster renderer")
	fs.Var(c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// Validate reports flag combinations that cannot run.
func (c *Config) Validate() error {
	switch c.Backend {
	case "gui", "term":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %g must be positive", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return nil
}

// Explicit returns the names of the flags set on the command line.
func Explicit(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// Merge fills in values from a config file wherever the matching flag was not
// given explicitly. Population keys become -set overrides unless already set.
func (c *Config) Merge(f config.File, explicit map[string]bool) {
	if f.Window.Width != nil && !explicit["width"] {
		c.Width = *f.Window.Width
	}
	if f.Window.Height != nil && !explicit["height"] {
		c.Height = *f.Window.Height
	}
	if f.Window.Scale != nil && !explicit["scale"] {
		c.Scale = *f.Window.Scale
	}
	if f.Window.Title != "" && !explicit["title"] {
		c.Title = f.Window.Title
	}
	if f.Playback.TPS != nil && !explicit["tps"] {
		c.TPS = *f.Playback.TPS
	}
	if f.Playback.Seed != nil && !explicit["seed"] {
		c.Seed = *f.Playback.Seed
	}
	if f.Playback.Backend != "" && !explicit["backend"] {
		c.Backend = f.Playback.Backend
	}
	if c.Sets == nil {
		c.Sets = KV{}
	}
	for k, v := range f.Overrides() {
		switch k {
		case "w", "h", "seed":
			continue
		}
		if _, ok := c.Sets[k]; !ok {
			c.Sets[k] = v
		}
	}
}

// SketchParams returns the factory overrides: the -set pairs plus the canvas
// size and seed.
func (c *Config) SketchParams() map[string]string {
	params := maps.Clone(map[string]string(c.Sets))
	if params == nil {
		params = map[string]string{}
	}
	if c.Width > 0 {
		params["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		params["h"] = strconv.Itoa(c.Height)
	}
	params["seed"] = strconv.FormatInt(c.Seed, 10)
	return params
}

// KV collects repeatable key=value flags.
type KV map[string]string

func (kv KV) String() string {
	pairs := make([]string, 0, len(kv))
	for k, v := range kv {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (kv KV) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}
