//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"shapeflow/internal/app"
	"shapeflow/internal/core"
)

func runGUI(sk core.Sketch, cfg *app.Config) error {
	game := app.New(sk, cfg)
	w, h := game.Layout(0, 0)

	title := cfg.Title
	if title == "" {
		title = "shapeflow - " + sk.Name()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
