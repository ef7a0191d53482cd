package lightsout

import (
	"fmt"

	"lights-out/pkg/core"
)

// Config holds the parameters fixed for one game.
type Config struct {
	Rows                int
	Cols                int
	ChanceLightStartsOn float64
}

// DefaultConfig returns a 5x7 board with half of the lights on.
func DefaultConfig() Config {
	return Config{Rows: 5, Cols: 7, ChanceLightStartsOn: 0.5}
}

// Status is the whole-game state.
type Status int

const (
	// InProgress means at least one light is still on.
	InProgress Status = iota
	// Won means every light is off. There is no way back to InProgress.
	Won
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Game holds the current board of one game and its status.
type Game struct {
	cfg    Config
	board  Board
	status Status
	moves  int
}

// NewGame creates the starting board. The game starts already won when the
// random board happens to have no lights on.
func NewGame(cfg Config, src core.Source) (*Game, error) {
	b, err := CreateBoard(cfg.Rows, cfg.Cols, cfg.ChanceLightStartsOn, src)
	if err != nil {
		return nil, err
	}
	return FromBoard(cfg, b), nil
}

// FromBoard starts a game on a copy of an existing board. The shape in cfg is
// replaced by the board's own.
func FromBoard(cfg Config, b Board) *Game {
	cfg.Rows, cfg.Cols = b.Rows(), b.Cols()
	g := &Game{cfg: cfg, board: b.Clone()}
	if HasWon(g.board) {
		g.status = Won
	}
	return g
}

// Press toggles the lights around c. It reports whether the press was
// accepted; presses outside the board or after the game is won are ignored.
func (g *Game) Press(c Coord) bool {
	if g.status == Won || !g.board.InBounds(c) {
		return false
	}
	g.board = ToggleAround(g.board, c)
	g.moves++
	if HasWon(g.board) {
		g.status = Won
	}
	return true
}

// Hint returns the first press of a solution for the current board.
func (g *Game) Hint() (Coord, bool) {
	if g.status == Won {
		return Coord{}, false
	}
	presses, ok := Solve(g.board)
	if !ok || len(presses) == 0 {
		return Coord{}, false
	}
	return presses[0], true
}

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.board.Clone() }

// Config returns the parameters the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Status returns the current game status.
func (g *Game) Status() Status { return g.status }

// Moves returns the number of accepted presses.
func (g *Game) Moves() int { return g.moves }
