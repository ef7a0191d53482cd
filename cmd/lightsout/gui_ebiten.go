//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"lights-out/internal/app"
	"lights-out/internal/ui"
)

func runGUI(opts *rootOptions) error {
	cfg := opts.cfg
	game, err := app.New(cfg, opts.logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Lights Out")
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale+ui.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
