// Package window runs the rocket in a desktop window with Ebitengine.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/uju/internal/assets"
	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/game"
)

// Game adapts game.App to ebiten.Game.
type Game struct {
	app      *game.App
	renderer *Renderer
	logger   *log.Logger

	// Toolkit queries, swapped out in tests.
	pressed func(ebiten.Key) bool
	now     func() time.Time

	// Last size reported by Layout, in pixels.
	width, height int
}

// NewGame wires app to an ebiten renderer built from sprites.
func NewGame(app *game.App, sprites *assets.Sprites, cfg config.RocketConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r, err := NewRenderer(sprites, cfg.Fire.Atlas)
	if err != nil {
		return nil, err
	}
	return &Game{
		app:      app,
		renderer: r,
		logger:   logger,
		pressed:  ebiten.IsKeyPressed,
		now:      time.Now,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}, nil
}

// Update samples the keyboard and steps the game once.
func (g *Game) Update() error {
	input := pollInput(g.pressed)
	if input.Has(core.ActionQuit) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	g.app.Step(game.Frame{
		Now:        g.now(),
		ScreenSize: core.V(float64(g.width), float64(g.height)),
		Input:      input,
	})
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.app.Draw(g.renderer)
}

// Layout uses the window size as the logical screen so resizing changes the
// play area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
		g.width, g.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the player quits or closes it.
func Run(app *game.App, sprites *assets.Sprites, cfg config.RocketConfig, fps int, logger *log.Logger) error {
	g, err := NewGame(app, sprites, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if fps > 0 {
		ebiten.SetTPS(fps)
	}

	return ebiten.RunGame(g)
}
