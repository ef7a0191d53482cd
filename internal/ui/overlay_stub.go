//go:build !ebiten

package ui

import (
	"lights-out/internal/render"
	"lights-out/pkg/lightsout"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(render.Palette, int) *Overlay { return &Overlay{} }

// ShowHint is a no-op in headless builds.
func (o *Overlay) ShowHint(lightsout.Coord) {}

// Clear is a no-op in headless builds.
func (o *Overlay) Clear() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
