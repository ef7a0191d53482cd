//go:build !ebiten

package ui

import (
	"lights-out/internal/render"
	"lights-out/pkg/lightsout"
)

// Height is the pixel height reserved for the HUD strip below the board.
const Height = 40

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(render.Palette) *HUD { return nil }

// SetMessage is a no-op in the headless build.
func (h *HUD) SetMessage(string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, *lightsout.Game, int) {}
