package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"shapeflow/internal/app"
	"shapeflow/internal/config"
	"shapeflow/internal/core"
	_ "shapeflow/internal/sims/bloom"
	"shapeflow/internal/term"
)

func main() {
	logger := log.New(os.Stderr, "[shapeflow] ", log.LstdFlags)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigPath != "" {
		file, err := config.Load(cfg.ConfigPath)
		if err != nil {
			logger.Fatal(err)
		}
		cfg.Merge(file, app.Explicit(flag.CommandLine))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	factory, ok := core.Sketches()[cfg.Sketch]
	if !ok {
		logger.Fatalf("unknown sketch %q (available: %s)", cfg.Sketch, strings.Join(core.SketchNames(), ", "))
	}
	sk := factory(cfg.SketchParams())
	logger.Printf("sketch=%s size=%dx%d seed=%d backend=%s", sk.Name(), sk.Size().W, sk.Size().H, cfg.Seed, cfg.Backend)

	var err error
	switch cfg.Backend {
	case "term":
		err = runTerm(sk, cfg)
	default:
		err = runGUI(sk, cfg)
	}
	if err != nil {
		logger.Fatal(err)
	}
}

// runTerm plays the sketch in the terminal. Player logs are held back until
// the screen is released.
func runTerm(sk core.Sketch, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	var held bytes.Buffer
	player := term.NewPlayer(screen, sk, cfg.TPS, cfg.Seed)
	player.SetLogger(log.New(&held, "[term] ", log.LstdFlags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = player.Run(ctx)
	screen.Fini()
	os.Stderr.Write(held.Bytes())

	if errors.Is(err, term.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
