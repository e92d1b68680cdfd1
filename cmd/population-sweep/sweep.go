package main

import (
	"fmt"
	"sort"
	"strconv"

	"shapeflow/pkg/core"
	"shapeflow/pkg/shapes"
)

type scenario struct {
	maxShapes int
	seed      int64
}

func (s scenario) less(o scenario) bool {
	if s.maxShapes != o.maxShapes {
		return s.maxShapes < o.maxShapes
	}
	return s.seed < o.seed
}

type result struct {
	scenario
	stats    shapes.Stats
	final    int
	meanLive float64
	overCap  bool
}

func (r result) String() string {
	return fmt.Sprintf("cap=%s seed=%d peak=%d final=%d meanLive=%.1f spawned=%d expired=%d discarded=%d",
		capLabel(r.maxShapes), r.seed, r.stats.Peak, r.final, r.meanLive, r.stats.Spawned, r.stats.Expired, r.stats.Discarded)
}

func capLabel(c int) string {
	if c == 0 {
		return "none"
	}
	return strconv.Itoa(c)
}

// run simulates one scenario headlessly.
func run(base shapes.Config, area shapes.Size, sc scenario, ticks int) result {
	cfg := base
	cfg.MaxShapes = sc.maxShapes
	pop := shapes.New(cfg, area, core.NewRNG(sc.seed))

	res := result{scenario: sc}
	total := 0
	for i := 0; i < ticks; i++ {
		rep := pop.Tick(area, nil)
		total += rep.Live
		if sc.maxShapes > 0 && rep.Live > sc.maxShapes {
			res.overCap = true
		}
	}
	res.stats = pop.Stats()
	res.final = pop.Len()
	if ticks > 0 {
		res.meanLive = float64(total) / float64(ticks)
	}
	return res
}

type capSummary struct {
	maxShapes int
	meanLive  float64
	meanPeak  float64
	discarded int
}

// summarize averages results per cap, ordered by cap.
func summarize(all []result) []capSummary {
	byCap := map[int]*capSummary{}
	counts := map[int]int{}
	for _, r := range all {
		s, ok := byCap[r.maxShapes]
		if !ok {
			s = &capSummary{maxShapes: r.maxShapes}
			byCap[r.maxShapes] = s
		}
		s.meanLive += r.meanLive
		s.meanPeak += float64(r.stats.Peak)
		s.discarded += r.stats.Discarded
		counts[r.maxShapes]++
	}
	out := make([]capSummary, 0, len(byCap))
	for c, s := range byCap {
		n := float64(counts[c])
		s.meanLive /= n
		s.meanPeak /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].maxShapes < out[j].maxShapes })
	return out
}
