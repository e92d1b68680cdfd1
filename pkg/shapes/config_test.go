package shapes

import (
	"image/color"
	"slices"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Palette) != 4 || cfg.Palette[2] != (color.RGBA{R: 0x1a, G: 0x53, B: 0xc0, A: 0xff}) {
		t.Fatalf("unexpected default palette %v", cfg.Palette)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"max_shapes":      "250",
		"min_burst":       "2",
		"max_burst":       "10",
		"min_cycle":       "10",
		"max_cycle":       "15",
		"spawn_intervals": "10, 20,40",
		"easing":          "outQuad",
		"palette":         "#ffffff,#000",
		"background":      "102030",
	})

	if cfg.MaxShapes != 250 || cfg.MinBurst != 2 || cfg.MaxBurst != 10 {
		t.Fatalf("burst/cap overrides not applied: %+v", cfg)
	}
	if cfg.MinCycleTicks != 10 || cfg.MaxCycleTicks != 15 {
		t.Fatalf("cycle overrides not applied: %v..%v", cfg.MinCycleTicks, cfg.MaxCycleTicks)
	}
	if !slices.Equal(cfg.SpawnIntervals, []int{10, 20, 40}) {
		t.Fatalf("intervals = %v", cfg.SpawnIntervals)
	}
	if cfg.Easing != "outQuad" {
		t.Fatalf("easing = %q", cfg.Easing)
	}
	want := []color.RGBA{{R: 255, G: 255, B: 255, A: 255}, {A: 255}}
	if !slices.Equal(cfg.Palette, want) {
		t.Fatalf("palette = %v, want %v", cfg.Palette, want)
	}
	if cfg.Background != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("background = %v", cfg.Background)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("overridden config invalid: %v", err)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"max_shapes":      "-4",
		"min_cycle":       "abc",
		"spawn_intervals": "15,zero",
		"easing":          "inOutElastic",
		"palette":         "#nothex",
	})
	if cfg.MaxShapes != def.MaxShapes || cfg.MinCycleTicks != def.MinCycleTicks {
		t.Fatalf("bad numeric values should keep defaults: %+v", cfg)
	}
	if !slices.Equal(cfg.SpawnIntervals, def.SpawnIntervals) {
		t.Fatalf("bad intervals should keep defaults: %v", cfg.SpawnIntervals)
	}
	if cfg.Easing != def.Easing || !slices.Equal(cfg.Palette, def.Palette) {
		t.Fatalf("bad easing/palette should keep defaults")
	}
}

func TestFromMapDropsEmptyRanges(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"min_points": "6", "max_points": "3",
		"min_burst": "20", "max_burst": "10",
		"min_cycle": "60",
		"min_size_ratio": "0.2", "max_size_ratio": "0.1",
	})
	if cfg.MinPoints != def.MinPoints || cfg.MaxPoints != def.MaxPoints {
		t.Fatalf("points = [%d, %d), want defaults", cfg.MinPoints, cfg.MaxPoints)
	}
	if cfg.MinBurst != def.MinBurst || cfg.MaxBurst != def.MaxBurst {
		t.Fatalf("burst = [%d, %d), want defaults", cfg.MinBurst, cfg.MaxBurst)
	}
	if cfg.MinCycleTicks != def.MinCycleTicks || cfg.MaxCycleTicks != def.MaxCycleTicks {
		t.Fatalf("cycle = [%v, %v), want defaults", cfg.MinCycleTicks, cfg.MaxCycleTicks)
	}
	if cfg.MinSizeRatio != def.MinSizeRatio || cfg.MaxSizeRatio != def.MaxSizeRatio {
		t.Fatalf("size ratio = [%v, %v), want defaults", cfg.MinSizeRatio, cfg.MaxSizeRatio)
	}

	cfg = FromMap(map[string]string{"min_burst": "40", "max_burst": "60", "min_cycle": "60", "max_cycle": "60"})
	if cfg.MinBurst != 40 || cfg.MaxBurst != 60 || cfg.MinCycleTicks != 60 || cfg.MaxCycleTicks != 60 {
		t.Fatalf("consistent pairs not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("applied pairs should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	mutations := map[string]func(*Config){
		"empty palette":   func(c *Config) { c.Palette = nil },
		"no intervals":    func(c *Config) { c.SpawnIntervals = nil },
		"zero interval":   func(c *Config) { c.SpawnIntervals = []int{15, 0} },
		"empty points":    func(c *Config) { c.MaxPoints = c.MinPoints },
		"negative cap":    func(c *Config) { c.MaxShapes = -1 },
		"unknown easing":  func(c *Config) { c.Easing = "wobble" },
		"inverted cycles": func(c *Config) { c.MaxCycleTicks = 5 },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
