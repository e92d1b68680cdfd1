package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"shapeflow/internal/app"
	"shapeflow/internal/config"
	"shapeflow/internal/sims/bloom"
)

func main() {
	logger := log.New(os.Stderr, "[snapshot] ", log.LstdFlags)

	ticks := flag.Int("ticks", 600, "ticks to simulate before capturing")
	seed := flag.Int64("seed", 42, "seed for the run")
	out := flag.String("out", "snapshot.svg", "output file (.svg or .png)")
	scale := flag.Float64("scale", 1, "pixel scale for PNG output")
	cfgPath := flag.String("config", "", "YAML configuration file")
	sets := app.KV{}
	flag.Var(sets, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	params := map[string]string{}
	if *cfgPath != "" {
		file, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal(err)
		}
		params = file.Overrides()
	}
	for k, v := range sets {
		params[k] = v
	}
	if _, ok := params["seed"]; !ok || app.Explicit(flag.CommandLine)["seed"] {
		params["seed"] = strconv.FormatInt(*seed, 10)
	}
	if *ticks < 1 {
		logger.Fatalf("ticks %d must be at least 1", *ticks)
	}

	cfg := bloom.FromMap(params)
	if err := cfg.Shapes.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	format, err := formatFor(*out)
	if err != nil {
		logger.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatalf("create output: %v", err)
	}
	sum, err := capture(f, cfg, *ticks, format, *scale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("wrote %s: seed=%d frame=%d live=%d peak=%d spawned=%d expired=%d discarded=%d",
		*out, cfg.Seed, sum.Frame, sum.Live, sum.Stats.Peak, sum.Stats.Spawned, sum.Stats.Expired, sum.Stats.Discarded)
}
