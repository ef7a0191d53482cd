//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lights-out/internal/render"
	"lights-out/pkg/lightsout"
)

// Height is the pixel height reserved for the HUD strip below the board.
const Height = 40

// HUD renders the status strip below the board.
type HUD struct {
	pal     render.Palette
	message string
}

// NewHUD constructs a HUD using the palette's text colour.
func NewHUD(pal render.Palette) *HUD {
	return &HUD{pal: pal}
}

// SetMessage shows a transient line such as "copied".
func (h *HUD) SetMessage(msg string) {
	if h == nil {
		return
	}
	h.message = msg
}

// Draw renders the status for g into the strip starting at top. When g is
// won it also writes the win banner over the board area above top.
func (h *HUD) Draw(screen *ebiten.Image, g *lightsout.Game, top int) {
	if h == nil || g == nil {
		return
	}
	face := basicfont.Face7x13
	status := fmt.Sprintf("moves %d  lit %d", g.Moves(), g.Board().Lit())
	var col color.Color = h.pal.Text
	if g.Status() == lightsout.Won {
		// The board is hidden once won; the banner takes its place.
		text.Draw(screen, "You win!", face, 8, top/2+6, h.pal.On)
		status = fmt.Sprintf("solved in %d moves  [R] new game", g.Moves())
		col = h.pal.On
	}
	text.Draw(screen, status, face, 8, top+16, col)

	line := "[click] toggle  [H] hint  [C] copy  [R] new  [Q] quit"
	if h.message != "" {
		line = h.message
	}
	text.Draw(screen, line, face, 8, top+32, h.pal.Text)
}
