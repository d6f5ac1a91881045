package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a Model.
type Options struct {
	Game    config.RoidsConfig
	Runtime core.RuntimeConfig
	Audio   roids.Audio // Optional
	Logger  *log.Logger // Optional; logs are discarded when nil
}

// musicPauser is implemented by audio backends that can hold the music.
type musicPauser interface {
	SetMusicPaused(paused bool)
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game     *roids.Game
	renderer *ScreenRenderer
	hud      *ScoreHUD
	input    *KeyInput
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	music    musicPauser
	state    core.GameState
	quitting bool
}

// NewModel creates a model and starts the simulation's first session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hold := time.Duration(opts.Game.Input.HoldMillis) * time.Millisecond

	m := Model{
		renderer: NewScreenRenderer(),
		hud:      &ScoreHUD{},
		input:    NewKeyInput(hold),
		screen:   core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		config:   opts.Runtime,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
	m.help.Width = opts.Runtime.ScreenW
	if p, ok := opts.Audio.(musicPauser); ok {
		m.music = p
	}
	m.game = roids.New(opts.Game, roids.Options{
		Renderer: m.renderer,
		Score:    m.hud,
		Audio:    opts.Audio,
		Input:    m.input,
	})
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "tick_rate", m.config.TickRate)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "frame", m.game.Frame(), "score", m.game.Score(), "stats", m.game.Stats())
		return m, tea.Quit
	case core.ActionPause:
		m.state.Paused = !m.state.Paused
		m.input.Reset()
		if m.music != nil {
			m.music.SetMusicPaused(m.state.Paused)
		}
		m.logger.Debug("pause toggled", "paused", m.state.Paused, "frame", m.game.Frame())
	case core.ActionRestart:
		m.logger.Info("session restarted", "frame", m.game.Frame(), "score", m.game.Score())
		m.input.Reset()
		m.hud.Reset()
		m.game.Reset()
		if m.music != nil {
			m.music.SetMusicPaused(false)
		}
		m.state = core.GameState{}
	case core.ActionNone:
	default:
		if !m.state.Paused {
			m.input.Press(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is rescaled,
// the simulation keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.state.Paused {
		m.game.Tick()
	}
	m.state.Frame = m.game.Frame()
	m.state.Score = m.game.Score()
	return m, tickCmd(m.config.TickRate)
}

// draw paints the status line and playfield into the screen buffer.
func (m *Model) draw() {
	s := m.screen
	s.Clear()
	if s.Height() < 3 || s.Width() < 4 {
		return
	}

	s.DrawText(1, 0, "SCORE "+m.hud.Text(), core.ColorHUD)
	if m.state.Paused {
		s.DrawTextCentered(0, "PAUSED", core.ColorAlert)
	}

	box := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(box, core.ColorBorder)

	w, h := m.game.Bounds()
	m.renderer.Paint(s, core.NewViewport(box.Inset(1), w, h))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".roids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("roids_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
