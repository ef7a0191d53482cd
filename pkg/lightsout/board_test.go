package lightsout

import (
	"errors"
	"testing"

	"lights-out/pkg/core"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestCreateBoardShape(t *testing.T) {
	rng := core.NewRNG(1)
	for _, shape := range [][2]int{{1, 1}, {3, 3}, {5, 7}, {2, 9}} {
		b, err := CreateBoard(shape[0], shape[1], 0.5, rng)
		if err != nil {
			t.Fatalf("CreateBoard(%d, %d): %v", shape[0], shape[1], err)
		}
		if b.Rows() != shape[0] {
			t.Fatalf("rows = %d, want %d", b.Rows(), shape[0])
		}
		for y, row := range b {
			if len(row) != shape[1] {
				t.Fatalf("row %d has %d cols, want %d", y, len(row), shape[1])
			}
		}
	}
}

func TestCreateBoardRejectsInvalidShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		if _, err := CreateBoard(shape[0], shape[1], 0.5, nil); !errors.Is(err, ErrInvalidShape) {
			t.Fatalf("CreateBoard(%d, %d) err = %v, want ErrInvalidShape", shape[0], shape[1], err)
		}
	}
}

func TestCreateBoardExtremeChances(t *testing.T) {
	rng := core.NewRNG(3)
	off, err := CreateBoard(4, 6, 0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if off.Lit() != 0 || !HasWon(off) {
		t.Fatalf("chance 0 should give an all-unlit board, got\n%s", off)
	}
	on, err := CreateBoard(4, 6, 1, rng)
	if err != nil {
		t.Fatal(err)
	}
	if on.Lit() != 24 || HasWon(on) {
		t.Fatalf("chance 1 should give an all-lit board, got\n%s", on)
	}
}

func TestCreateBoardUsesInjectedSource(t *testing.T) {
	b, err := CreateBoard(2, 2, 0.5, constSource(0.25))
	if err != nil {
		t.Fatal(err)
	}
	if b.Lit() != 4 {
		t.Fatalf("draws below the chance should light every cell, got\n%s", b)
	}
	b, err = CreateBoard(2, 2, 0.5, constSource(0.75))
	if err != nil {
		t.Fatal(err)
	}
	if b.Lit() != 0 {
		t.Fatalf("draws above the chance should leave every cell off, got\n%s", b)
	}
}

func TestHasWon(t *testing.T) {
	cases := []struct {
		board string
		want  bool
	}{
		{".", true},
		{"O", false},
		{"...\n...\n...", true},
		{"OOO\nOOO", false},
		{"...\n..O", false},
	}
	for _, tc := range cases {
		if got := HasWon(MustParseBoard(tc.board)); got != tc.want {
			t.Fatalf("HasWon(%q) = %v, want %v", tc.board, got, tc.want)
		}
	}
}

func TestToggleAroundCenter(t *testing.T) {
	board := MustParseBoard("...\n...\n...")
	got := ToggleAround(board, Coord{Row: 1, Col: 1})
	want := MustParseBoard(".O.\nOOO\n.O.")
	if !got.Equal(want) {
		t.Fatalf("center toggle:\n%s\nwant\n%s", got, want)
	}
	if HasWon(got) {
		t.Fatal("board with lights on must not be won")
	}
}

func TestToggleAroundCorner(t *testing.T) {
	board := MustParseBoard("...\n...\n...")
	got := ToggleAround(board, Coord{Row: 0, Col: 0})
	want := MustParseBoard("OO.\nO..\n...")
	if !got.Equal(want) {
		t.Fatalf("corner toggle:\n%s\nwant\n%s", got, want)
	}
}

func TestToggleAroundSingleCell(t *testing.T) {
	board := MustParseBoard(".")
	got := ToggleAround(board, Coord{})
	if !got.Equal(MustParseBoard("O")) {
		t.Fatalf("1x1 toggle = %s, want O", got)
	}
	if HasWon(got) {
		t.Fatal("[[T]] must not be won")
	}
	if !HasWon(board) {
		t.Fatal("[[F]] must be won")
	}
}

func TestToggleAroundDoesNotMutateInput(t *testing.T) {
	board, err := CreateBoard(4, 5, 0.5, core.NewRNG(11))
	if err != nil {
		t.Fatal(err)
	}
	saved := board.Clone()
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			ToggleAround(board, Coord{Row: r, Col: c})
			if !board.Equal(saved) {
				t.Fatalf("input mutated by toggle at (%d,%d)", r, c)
			}
		}
	}
}

func TestToggleAroundTwiceIsIdentity(t *testing.T) {
	board, err := CreateBoard(5, 7, 0.5, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			pos := Coord{Row: r, Col: c}
			if got := ToggleAround(ToggleAround(board, pos), pos); !got.Equal(board) {
				t.Fatalf("double toggle at (%d,%d) changed the board", r, c)
			}
		}
	}
}

func TestToggleAroundFlipCounts(t *testing.T) {
	const rows, cols = 4, 5
	board, err := CreateBoard(rows, cols, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			want := 5
			if r == 0 || r == rows-1 {
				want--
			}
			if c == 0 || c == cols-1 {
				want--
			}
			if got := ToggleAround(board, Coord{Row: r, Col: c}).Lit(); got != want {
				t.Fatalf("toggle at (%d,%d) flipped %d cells, want %d", r, c, got, want)
			}
		}
	}
}

func TestToggleAroundOutOfRangeTarget(t *testing.T) {
	board := MustParseBoard("O.\n.O")
	for _, pos := range []Coord{{-1, -1}, {2, 2}, {0, 5}, {-3, 0}} {
		if got := ToggleAround(board, pos); !got.Equal(board) {
			t.Fatalf("toggle at %+v changed the board:\n%s", pos, got)
		}
	}
	// A target just outside still reaches its in-range neighbour.
	got := ToggleAround(board, Coord{Row: -1, Col: 0})
	if !got.Equal(MustParseBoard("..\n.O")) {
		t.Fatalf("toggle above the board should flip (0,0) only, got\n%s", got)
	}
}
