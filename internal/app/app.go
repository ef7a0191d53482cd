//go:build ebiten

package app

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lights-out/internal/config"
	"lights-out/internal/render"
	"lights-out/internal/ui"
	"lights-out/pkg/core"
	"lights-out/pkg/lightsout"
)

// Game adapts a lights out game to the ebiten.Game interface.
type Game struct {
	cfg     config.Config
	src     core.Source
	game    *lightsout.Game
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pal     render.Palette
	log     *slog.Logger

	scale int
}

// New constructs a Game from the provided configuration.
func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pal, _ := render.Lookup(cfg.Theme)
	g := &Game{
		cfg:     cfg,
		src:     cfg.Source(),
		painter: render.NewGridPainter(cfg.Rows, cfg.Cols),
		hud:     ui.NewHUD(pal),
		overlay: ui.NewOverlay(pal, cfg.Scale),
		pal:     pal,
		log:     logger,
		scale:   cfg.Scale,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts a fresh game with the configured parameters.
func (g *Game) Reset() error {
	game, err := lightsout.NewGame(g.cfg.Game(), g.src)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	g.game = game
	g.overlay.Clear()
	g.hud.SetMessage("")
	g.log.Info("new game", "rows", g.cfg.Rows, "cols", g.cfg.Cols, "lit", game.Board().Lit(), "status", game.Status())
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if c, ok := g.game.Hint(); ok {
			g.overlay.ShowHint(c)
			g.hud.SetMessage(fmt.Sprintf("try row %d col %d", c.Row+1, c.Col+1))
		} else if g.game.Status() != lightsout.Won {
			g.hud.SetMessage("this board has no solution, [R] for a new one")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.game.Board().String()); err != nil {
			g.log.Warn("copy board", "err", err)
			g.hud.SetMessage("copy failed")
		} else {
			g.hud.SetMessage("board copied")
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if c, ok := render.CellAt(g.game.Board(), x, y, g.scale); ok && g.game.Press(c) {
			g.overlay.Clear()
			g.hud.SetMessage("")
			if g.game.Status() == lightsout.Won {
				g.log.Info("game won", "moves", g.game.Moves())
			}
		}
	}
	return nil
}

// Draw renders the board and status strip. A won game shows only the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.game.Status() == lightsout.Won {
		screen.Fill(g.pal.Off)
	} else {
		screen.Fill(g.pal.Grid)
		g.painter.Blit(screen, g.game.Board(), g.pal, g.scale)
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen, g.game, g.cfg.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.scale, g.cfg.Rows*g.scale + ui.Height
}
