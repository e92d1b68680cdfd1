//go:build !ebiten

package main

import (
	"errors"

	"shapeflow/internal/app"
	"shapeflow/internal/core"
)

func runGUI(core.Sketch, *app.Config) error {
	return errors.New("the GUI backend requires the ebiten build tag: rebuild with `-tags ebiten` or pass -backend term")
}
