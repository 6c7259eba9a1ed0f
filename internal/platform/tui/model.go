package tui

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/game"
)

// footerRows is the space reserved below the scene for the help line.
const footerRows = 1

// Model is the Bubble Tea model driving the rocket game.
type Model struct {
	app        *game.App
	screen     *core.Screen
	renderer   *ScreenRenderer
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for app. The scene fills the terminal minus the
// help footer.
func NewModel(app *game.App, rocket image.Image, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		app:        app,
		screen:     screen,
		renderer:   NewScreenRenderer(screen, rocket),
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey records the action for the next tick. Keys pressed between two
// ticks are treated as held during that frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit requested", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize refreshes the character grid. The game picks up the new
// virtual size on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one game step with the input gathered since the last tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.app.Step(game.Frame{
		Now:        time.Time(msg),
		ScreenSize: m.VirtualSize(),
		Input:      m.inputFrame.Clone(),
	})

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// VirtualSize is the screen size reported to the game, in pixels.
func (m Model) VirtualSize() core.Vec2 {
	return VirtualSize(m.screen.Width(), m.screen.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.app.Draw(m.renderer)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program for app.
func Run(app *game.App, rocket image.Image, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(app, rocket, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
