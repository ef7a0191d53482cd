package lightsout

import (
	"strings"
	"testing"

	"lights-out/pkg/core"
)

func TestNewGameStartsWonWhenNoLights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChanceLightStartsOn = 0
	g, err := NewGame(cfg, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Status() != Won {
		t.Fatalf("status = %v, want won", g.Status())
	}
	if g.Press(Coord{Row: 1, Col: 1}) {
		t.Fatal("press after win must be ignored")
	}
	if g.Moves() != 0 {
		t.Fatalf("moves = %d, want 0", g.Moves())
	}
}

func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame(DefaultConfig(), core.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	b := g.Board()
	if b.Rows() != 5 || b.Cols() != 7 {
		t.Fatalf("default board is %dx%d, want 5x7", b.Rows(), b.Cols())
	}
}

func TestNewGameInvalidShape(t *testing.T) {
	if _, err := NewGame(Config{Rows: 0, Cols: 7}, nil); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestPressTransitionsToWon(t *testing.T) {
	g := FromBoard(DefaultConfig(), MustParseBoard(".O.\nOOO\n.O."))
	if g.Status() != InProgress {
		t.Fatalf("status = %v, want in progress", g.Status())
	}
	if g.Press(Coord{Row: 5, Col: 0}) {
		t.Fatal("out-of-range press must be rejected")
	}
	if !g.Press(Coord{Row: 0, Col: 0}) {
		t.Fatal("in-range press rejected")
	}
	if g.Status() != InProgress {
		t.Fatal("game should still be in progress")
	}
	g.Press(Coord{Row: 0, Col: 0})
	g.Press(Coord{Row: 1, Col: 1})
	if g.Status() != Won {
		t.Fatalf("status = %v after clearing the board, want won\n%s", g.Status(), g.Board())
	}
	if g.Moves() != 3 {
		t.Fatalf("moves = %d, want 3", g.Moves())
	}
}

func TestGameBoardIsACopy(t *testing.T) {
	g := FromBoard(Config{}, MustParseBoard("O."))
	b := g.Board()
	b[0][0] = false
	if g.Board().Lit() != 1 {
		t.Fatal("mutating the returned board changed the game")
	}
	if c := g.Config(); c.Rows != 1 || c.Cols != 2 {
		t.Fatalf("config shape = %dx%d, want 1x2", c.Rows, c.Cols)
	}
}

func TestHintLeadsToWin(t *testing.T) {
	g, err := NewGame(Config{Rows: 3, Cols: 3, ChanceLightStartsOn: 0.5}, core.NewRNG(21))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 9 && g.Status() != Won; i++ {
		c, ok := g.Hint()
		if !ok {
			t.Fatalf("3x3 boards are always solvable, no hint for\n%s", g.Board())
		}
		g.Press(c)
	}
	if g.Status() != Won {
		t.Fatalf("following hints did not win, board\n%s", g.Board())
	}
	if _, ok := g.Hint(); ok {
		t.Fatal("won game should not offer a hint")
	}
}

func TestStatusString(t *testing.T) {
	if InProgress.String() != "in progress" || Won.String() != "won" {
		t.Fatal("unexpected status names")
	}
	if !strings.HasPrefix(Status(7).String(), "Status(") {
		t.Fatal("unknown status should render its number")
	}
}
