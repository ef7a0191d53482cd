package lightsout

import (
	"errors"
	"fmt"

	"lights-out/pkg/core"
)

// ErrInvalidShape is returned when a board is requested with a non-positive
// row or column count.
var ErrInvalidShape = errors.New("lightsout: invalid board shape")

// Board is a row-major grid of lights; true means lit.
type Board [][]bool

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// flipOffsets lists the target cell followed by its orthogonal neighbours.
var flipOffsets = [...]Coord{
	{0, 0},
	{-1, 0},
	{0, -1},
	{0, 1},
	{1, 0},
}

// CreateBoard builds an nrows x ncols board where every cell is lit
// independently with probability chance. A nil src uses core.DefaultSource.
func CreateBoard(nrows, ncols int, chance float64, src core.Source) (Board, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, nrows, ncols)
	}
	b := make(Board, nrows)
	for y := range b {
		b[y] = make([]bool, ncols)
		for x := range b[y] {
			b[y][x] = core.RandomCellState(src, chance)
		}
	}
	return b, nil
}

// ToggleAround returns a copy of b with the cell at c and its four orthogonal
// neighbours flipped. Cells outside the board are skipped, c included, with
// no wraparound. b is not modified.
func ToggleAround(b Board, c Coord) Board {
	next := b.Clone()
	for _, off := range flipOffsets {
		p := Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if next.InBounds(p) {
			next[p.Row][p.Col] = !next[p.Row][p.Col]
		}
	}
	return next
}

// HasWon reports whether every light is off.
func HasWon(b Board) bool {
	for _, row := range b {
		for _, lit := range row {
			if lit {
				return false
			}
		}
	}
	return true
}

// Rows returns the number of rows.
func (b Board) Rows() int { return len(b) }

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether c addresses a cell of b.
func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows() && c.Col >= 0 && c.Col < len(b[c.Row])
}

// Clone returns an independent element-wise copy.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both boards have the same shape and lights.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(o[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Lit counts the lights that are on.
func (b Board) Lit() int {
	n := 0
	for _, row := range b {
		for _, lit := range row {
			if lit {
				n++
			}
		}
	}
	return n
}
