package main

import (
	"testing"

	"shapeflow/pkg/shapes"
)

func TestRunRespectsCap(t *testing.T) {
	area := shapes.Size{W: 400, H: 300}
	res := run(shapes.DefaultConfig(), area, scenario{maxShapes: 20, seed: 3}, 600)
	if res.overCap || res.stats.Peak > 20 {
		t.Fatalf("cap exceeded: %s", res)
	}
	if res.stats.Discarded == 0 {
		t.Fatalf("expected discarded spawns with a cap of 20: %s", res)
	}
	if res.stats.Spawned-res.stats.Expired != res.final {
		t.Fatalf("accounting mismatch: %s", res)
	}
}

func TestRunDeterministic(t *testing.T) {
	area := shapes.Size{W: 400, H: 300}
	a := run(shapes.DefaultConfig(), area, scenario{maxShapes: 0, seed: 9}, 300)
	b := run(shapes.DefaultConfig(), area, scenario{maxShapes: 0, seed: 9}, 300)
	if a.stats != b.stats || a.meanLive != b.meanLive {
		t.Fatalf("runs differ:\n%s\n%s", a, b)
	}
}

func TestSummarizeGroupsByCap(t *testing.T) {
	all := []result{
		{scenario: scenario{maxShapes: 500, seed: 1}, stats: shapes.Stats{Peak: 10, Discarded: 1}, meanLive: 4},
		{scenario: scenario{maxShapes: 0, seed: 1}, stats: shapes.Stats{Peak: 30}, meanLive: 10},
		{scenario: scenario{maxShapes: 500, seed: 2}, stats: shapes.Stats{Peak: 20, Discarded: 2}, meanLive: 6},
	}
	got := summarize(all)
	if len(got) != 2 || got[0].maxShapes != 0 || got[1].maxShapes != 500 {
		t.Fatalf("summaries = %+v", got)
	}
	if got[1].meanLive != 5 || got[1].meanPeak != 15 || got[1].discarded != 3 {
		t.Fatalf("cap 500 summary = %+v", got[1])
	}
}
