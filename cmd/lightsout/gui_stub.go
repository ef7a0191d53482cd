//go:build !ebiten

package main

import (
	"fmt"

	"lights-out/internal/app"
)

func runGUI(*rootOptions) error {
	return fmt.Errorf("%w; re-run with `go run -tags ebiten ./cmd/lightsout gui`", app.ErrNoGUI)
}
