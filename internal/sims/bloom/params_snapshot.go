package bloom

import (
	"strconv"
	"strings"

	"shapeflow/internal/core"
	"shapeflow/pkg/shapes"
)

// Parameters reports the live population counters and the configuration.
func (b *Bloom) Parameters() core.ParameterSnapshot {
	cfg := b.pop.Config()
	stats := b.pop.Stats()
	palette := make([]string, len(cfg.Palette))
	for i, c := range cfg.Palette {
		palette[i] = shapes.HexColor(c)
	}
	intervals := make([]string, len(cfg.SpawnIntervals))
	for i, iv := range cfg.SpawnIntervals {
		intervals[i] = strconv.Itoa(iv)
	}

	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("w", "Width", b.size.W),
				intParam("h", "Height", b.size.H),
				int64Param("seed", "Seed", b.seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("frame", "Frame", b.pop.Frame()),
				intParam("live", "Live", b.pop.Len()),
				intParam("peak", "Peak", stats.Peak),
				intParam("spawned", "Spawned", stats.Spawned),
				intParam("expired", "Expired", stats.Expired),
				intParam("discarded", "Discarded", stats.Discarded),
				intParam("max_shapes", "Cap", cfg.MaxShapes),
			},
		},
		{
			Name: "Spawning",
			Params: []core.Parameter{
				stringParam("spawn_intervals", "Intervals", strings.Join(intervals, ",")),
				intParam("min_burst", "Burst min", cfg.MinBurst),
				intParam("max_burst", "Burst max", cfg.MaxBurst),
			},
		},
		{
			Name: "Shapes",
			Params: []core.Parameter{
				floatParam("min_cycle", "Cycle min", cfg.MinCycleTicks),
				floatParam("max_cycle", "Cycle max", cfg.MaxCycleTicks),
				intParam("min_points", "Points min", cfg.MinPoints),
				intParam("max_points", "Points max", cfg.MaxPoints),
				stringParam("easing", "Easing", cfg.Easing),
				stringParam("palette", "Palette", strings.Join(palette, ",")),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
