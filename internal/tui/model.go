// Package tui implements the terminal front end using bubbletea.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lights-out/internal/config"
	"lights-out/pkg/core"
	"lights-out/pkg/lightsout"
)

// Options carries the collaborators of a Model. Zero values fall back to
// defaults.
type Options struct {
	// Source seeds every new game; defaults to the config's seeded RNG.
	Source core.Source
	// Copy writes text to the system clipboard.
	Copy   func(string) error
	Logger *slog.Logger
}

// Model is the bubbletea model for one terminal session.
type Model struct {
	cfg  config.Config
	src  core.Source
	copy func(string) error
	log  *slog.Logger

	game    *lightsout.Game
	cursor  lightsout.Coord
	hint    lightsout.Coord
	hasHint bool
	message string
}

// New creates a model and deals the first board.
func New(cfg config.Config, opts Options) (Model, error) {
	m := Model{cfg: cfg, src: opts.Source, copy: opts.Copy, log: opts.Logger}
	if m.src == nil {
		m.src = cfg.Source()
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) newGame() error {
	g, err := lightsout.NewGame(m.cfg.Game(), m.src)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	m.game = g
	m.cursor = lightsout.Coord{}
	m.hasHint = false
	m.message = ""
	m.log.Debug("new game", "rows", m.cfg.Rows, "cols", m.cfg.Cols, "lit", g.Board().Lit())
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	shape := m.game.Config()
	rows, cols := shape.Rows, shape.Cols
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < rows-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < cols-1 {
			m.cursor.Col++
		}
	case " ", "enter":
		if m.game.Press(m.cursor) {
			m.hasHint = false
			m.message = ""
			if m.game.Status() == lightsout.Won {
				m.log.Info("game won", "moves", m.game.Moves())
			}
		}
	case "n":
		if err := m.newGame(); err != nil {
			m.message = err.Error()
		}
	case "?":
		if c, ok := m.game.Hint(); ok {
			m.hint, m.hasHint = c, true
			m.message = fmt.Sprintf("try row %d col %d", c.Row+1, c.Col+1)
		} else if m.game.Status() != lightsout.Won {
			m.message = "this board has no solution, press n for a new one"
		}
	case "y":
		if err := m.copy(m.game.Board().String()); err != nil {
			m.log.Warn("copy board", "err", err)
			m.message = "copy failed"
		} else {
			m.message = "board copied"
		}
	}
	return m, nil
}

// View implements tea.Model. Once the game is won only the win line and
// the keys still available are shown.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Let's play Lights Out!"))
	sb.WriteString("\n\n")

	if m.game.Status() == lightsout.Won {
		sb.WriteString(winStyle.Render(fmt.Sprintf("You win! (%d moves)", m.game.Moves())))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("n new • q quit"))
		sb.WriteByte('\n')
		return sb.String()
	}

	board := m.game.Board()
	for y, row := range board {
		cells := make([]string, len(row))
		for x, lit := range row {
			pos := lightsout.Coord{Row: y, Col: x}
			style := offStyle
			if lit {
				style = onStyle
			}
			switch {
			case pos == m.cursor:
				style = style.Underline(true).Bold(true)
				cells[x] = style.Render("[" + cellGlyph(lit) + "]")
			case m.hasHint && pos == m.hint:
				cells[x] = style.Foreground(hintColor).Render("<" + cellGlyph(lit) + ">")
			default:
				cells[x] = style.Render(" " + cellGlyph(lit) + " ")
			}
		}
		sb.WriteString(strings.Join(cells, ""))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	sb.WriteString(statsStyle.Render(fmt.Sprintf("moves %d  lit %d", m.game.Moves(), board.Lit())))
	sb.WriteByte('\n')
	if m.message != "" {
		sb.WriteString(m.message)
		sb.WriteByte('\n')
	}
	sb.WriteString(helpStyle.Render("arrows/hjkl move • space toggle • ? hint • y copy • n new • q quit"))
	sb.WriteByte('\n')
	return sb.String()
}

// Game exposes the current game.
func (m Model) Game() *lightsout.Game { return m.game }

// Cursor returns the highlighted cell.
func (m Model) Cursor() lightsout.Coord { return m.cursor }

func cellGlyph(lit bool) string {
	if lit {
		return "●"
	}
	return "·"
}

var (
	hintColor = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
