//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lights-out/pkg/lightsout"
)

// GridPainter updates a single RGBA image from board lights and draws it
// scaled, one square per cell.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the board into the painter image and draws it with grid lines
// between cells.
func (gp *GridPainter) Blit(dst *ebiten.Image, b lightsout.Board, pal Palette, scale int) {
	if b.Rows() != gp.rows || b.Cols() != gp.cols {
		return
	}
	fillBoardRGBA(gp.buf, b, pal.On, pal.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	w := float32(gp.cols * scale)
	h := float32(gp.rows * scale)
	gutter := float32(scale) / 16
	if gutter < 1 {
		gutter = 1
	}
	for y := 0; y <= gp.rows; y++ {
		fy := float32(y * scale)
		vector.StrokeLine(dst, 0, fy, w, fy, gutter, pal.Grid, false)
	}
	for x := 0; x <= gp.cols; x++ {
		fx := float32(x * scale)
		vector.StrokeLine(dst, fx, 0, fx, h, gutter, pal.Grid, false)
	}
}
