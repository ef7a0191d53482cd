package lightsout

// bitRow is one row of the augmented system, packed 64 columns per word.
type bitRow []uint64

func (r bitRow) get(i int) bool { return r[i>>6]&(1<<(uint(i)&63)) != 0 }
func (r bitRow) set(i int)      { r[i>>6] |= 1 << (uint(i) & 63) }

func (r bitRow) xor(o bitRow) {
	for i := range r {
		r[i] ^= o[i]
	}
}

// Solve finds a set of presses that turns every light off, listed in
// row-major order. Pressing a cell twice cancels out, so each cell appears at
// most once. The second result is false when no such set exists. Solve works
// over GF(2) by Gaussian elimination; free variables are left unpressed, so
// the answer is a solution but not necessarily the shortest one. A ragged
// board has no solution.
func Solve(b Board) ([]Coord, bool) {
	rows, cols := b.Rows(), b.Cols()
	for _, row := range b {
		if len(row) != cols {
			return nil, false
		}
	}
	n := rows * cols
	if n == 0 {
		return nil, true
	}
	words := (n + 1 + 63) / 64
	m := make([]bitRow, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			m[i] = make(bitRow, words)
			for _, off := range flipOffsets {
				p := Coord{Row: r + off.Row, Col: c + off.Col}
				if b.InBounds(p) {
					m[i].set(p.Row*cols + p.Col)
				}
			}
			if b[r][c] {
				m[i].set(n)
			}
		}
	}

	pivots := make([]int, 0, n)
	next := 0
	for col := 0; col < n && next < n; col++ {
		sel := -1
		for r := next; r < n; r++ {
			if m[r].get(col) {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		m[next], m[sel] = m[sel], m[next]
		for r := 0; r < n; r++ {
			if r != next && m[r].get(col) {
				m[r].xor(m[next])
			}
		}
		pivots = append(pivots, col)
		next++
	}
	for r := next; r < n; r++ {
		if m[r].get(n) {
			return nil, false
		}
	}

	var presses []Coord
	for k, col := range pivots {
		if m[k].get(n) {
			presses = append(presses, Coord{Row: col / cols, Col: col % cols})
		}
	}
	return presses, true
}
