package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Options configures a play session.
type Options struct {
	Store     *storage.Store // May be nil; scores are then not kept
	Logger    *log.Logger    // May be nil; milestones are then discarded
	Player    string
	SessionID string
	Palette   *Palette // Defaults to the process renderer
}

// Model is the Bubble Tea model for playing the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	palette    Palette
	keys       KeyMap
	holds      *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	scores     *ScoreboardModel // Non-nil while the high score table is open
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
// The persisted high score is loaded from the store.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := NewPalette(nil)
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	game.Reset(cfg)
	if opts.Store != nil {
		high, err := opts.Store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		game.SetHighScore(high)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		palette:    palette,
		keys:       DefaultKeyMap(),
		holds:      newHoldTracker(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateScores(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key press into game input. Movement keys go through the
// hold tracker so the game also sees their release.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.inputFrame.Push(core.QuitEvent())
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores) && !m.gameState.Active:
		return m.openScores()
	}

	k := m.keys.GameKey(msg)
	switch k {
	case core.KeyNone:
		return m, nil
	case core.KeyLeft, core.KeyRight:
		other := core.KeyRight
		if k == core.KeyRight {
			other = core.KeyLeft
		}
		if m.holds.Release(other) {
			m.inputFrame.Push(core.KeyUp(other))
		}
		if m.holds.Press(k, now) {
			m.inputFrame.Push(core.KeyDown(k))
		}
	default:
		m.inputFrame.Push(core.KeyDown(k))
	}
	return m, nil
}

// handleMouse forwards left clicks to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Push(core.PointerPress(msg.X, msg.Y))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.game.Resize(msg.Width, msg.Height)
	m.gameState = m.game.State()

	return m, nil
}

// handleTick releases keys that stopped repeating, steps the game and reacts
// to what happened.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.holds.Expire(now) {
		m.inputFrame.Push(core.KeyUp(k))
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	prev := m.gameState
	m.gameState = result.State
	m.logEvents(result)

	if result.Has(core.EventGameOver) {
		m.saveScore(result.State)
	}

	if result.Quit {
		if m.gameState.Active {
			m.saveScore(m.gameState)
		}
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if prev.PointerVisible != m.gameState.PointerVisible {
		cmds = append(cmds, pointerCmd(m.gameState.PointerVisible))
	}
	return m, tea.Batch(cmds...)
}

// pointerCmd captures the mouse only while the game shows a pointer.
func pointerCmd(visible bool) tea.Cmd {
	if visible {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}

func (m Model) logEvents(result core.StepResult) {
	st := result.State
	for _, e := range result.Events {
		switch e {
		case core.EventNewGame:
			m.logger.Info("new game", "player", m.opts.Player, "high_score", st.HighScore)
		case core.EventLevelUp:
			m.logger.Info("level up", "player", m.opts.Player, "level", st.Level, "score", st.Score)
		case core.EventShipHit:
			m.logger.Debug("ship hit", "player", m.opts.Player, "ships_left", st.ShipsLeft)
		case core.EventGameOver:
			m.logger.Info("game over", "player", m.opts.Player, "score", st.Score, "level", st.Level)
		}
	}
}

// saveScore records a finished game. Zero scores are not kept.
func (m Model) saveScore(st core.GameState) {
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		Player:    m.opts.Player,
		SessionID: m.opts.SessionID,
		Score:     st.Score,
		Level:     st.Level,
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// openScores shows the high score table on top of the idle game.
func (m Model) openScores() (tea.Model, tea.Cmd) {
	for _, k := range m.holds.ReleaseAll() {
		m.inputFrame.Push(core.KeyUp(k))
	}
	board := NewScoreboardModel(m.opts.Store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
	board.embedded = true
	m.scores = &board
	return m, tea.DisableMouse
}

// updateScores routes messages to the open high score table.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.handleResize(wsm)
		m = next.(Model)
	}

	updated, cmd := m.scores.Update(msg)
	board := updated.(ScoreboardModel)
	m.scores = &board

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.scores = nil
		return m, pointerCmd(m.gameState.PointerVisible)
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invasion", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Released once play starts and the pointer hides
	)

	_, err := p.Run()
	return err
}
