package render

import (
	"image/color"

	"lights-out/pkg/lightsout"
)

// fillBoardRGBA converts board lights into RGBA pixels in buf, one pixel per
// cell in row-major order. buf must hold 4*rows*cols bytes.
func fillBoardRGBA(buf []byte, b lightsout.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for _, row := range b {
		for _, lit := range row {
			base := i * 4
			i++
			if lit {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// CellAt maps a screen position to the cell drawn there at the given scale.
// The second result is false when the position falls outside the board.
func CellAt(b lightsout.Board, x, y, scale int) (lightsout.Coord, bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return lightsout.Coord{}, false
	}
	c := lightsout.Coord{Row: y / scale, Col: x / scale}
	return c, b.InBounds(c)
}
