package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"shapeflow/pkg/shapes"
)

var caps = []int{0, 250, 500, 1000, 1500}

func main() {
	logger := log.New(os.Stderr, "[sweep] ", log.LstdFlags)

	ticks := flag.Int("ticks", 3600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "seeds per cap")
	width := flag.Int("width", 1152, "canvas width")
	height := flag.Int("height", 720, "canvas height")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	if *workers <= 0 || *seeds <= 0 || *ticks <= 0 {
		logger.Fatal("ticks, workers and seeds must be positive")
	}

	base := shapes.DefaultConfig()
	area := shapes.Size{W: float64(*width), H: float64(*height)}

	var jobsList []scenario
	for _, c := range caps {
		for s := 1; s <= *seeds; s++ {
			jobsList = append(jobsList, scenario{maxShapes: c, seed: int64(s)})
		}
	}
	logger.Printf("sweeping %d scenarios (%d workers, %d ticks)", len(jobsList), *workers, *ticks)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- run(base, area, sc, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range jobsList {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].stats.Peak != all[j].stats.Peak {
			return all[i].stats.Peak > all[j].stats.Peak
		}
		return all[i].scenario.less(all[j].scenario)
	})

	fmt.Printf("Top %d results (elapsed %s):\n", min(*top, len(all)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	fmt.Println("\nBy cap:")
	for _, s := range summarize(all) {
		fmt.Printf("  cap=%-5s meanLive=%8.1f meanPeak=%7.1f discarded=%d\n", capLabel(s.maxShapes), s.meanLive, s.meanPeak, s.discarded)
	}
}
