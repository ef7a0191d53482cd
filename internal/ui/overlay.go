//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lights-out/internal/render"
	"lights-out/pkg/lightsout"
)

// Overlay outlines a hinted cell on top of the board.
type Overlay struct {
	pal   render.Palette
	scale int
	hint  lightsout.Coord
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(pal render.Palette, scale int) *Overlay {
	return &Overlay{pal: pal, scale: scale}
}

// ShowHint outlines c until Clear is called.
func (o *Overlay) ShowHint(c lightsout.Coord) {
	o.hint = c
	o.show = true
}

// Clear removes the hint outline.
func (o *Overlay) Clear() { o.show = false }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	width := float32(scale) / 10
	if width < 2 {
		width = 2
	}
	inset := width / 2
	x := float32(o.hint.Col*scale) + inset
	y := float32(o.hint.Row*scale) + inset
	size := float32(scale) - width
	vector.StrokeRect(screen, x, y, size, size, width, o.pal.Hint, false)
}
