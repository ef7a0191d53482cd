package lightsout

import (
	"fmt"
	"strings"
)

const (
	litRune   = 'O'
	unlitRune = '.'
)

// String renders one line per row using 'O' for lit and '.' for unlit cells.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, lit := range row {
			if lit {
				sb.WriteRune(litRune)
			} else {
				sb.WriteRune(unlitRune)
			}
		}
	}
	return sb.String()
}

// ParseBoard reads the form produced by Board.String. Blank lines and
// surrounding whitespace are ignored; 'o', 'x' and '#' are accepted as lit.
func ParseBoard(s string) (Board, error) {
	var b Board
	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case litRune, 'o', 'x', 'X', '#':
				row = append(row, true)
			case unlitRune, '-':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("lightsout: line %d: unexpected %q", n+1, r)
			}
		}
		if len(b) > 0 && len(row) != len(b[0]) {
			return nil, fmt.Errorf("lightsout: line %d: %d cells, want %d", n+1, len(row), len(b[0]))
		}
		b = append(b, row)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidShape)
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on error. Intended for fixtures.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
