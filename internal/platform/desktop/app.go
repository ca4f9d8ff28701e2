// Package desktop runs the game in a window through Ebitengine. Unlike a
// terminal it reports key releases and lets the game hide the cursor.
package desktop

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Options configures a window session.
type Options struct {
	Store  *storage.Store // May be nil
	Logger *log.Logger    // May be nil
	Sound  *audio.Player  // May be nil for silent play
	Player string
}

// App adapts a core.Game to ebiten.Game.
type App struct {
	game   core.Game
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger
	screen *core.Screen
	frame  core.InputFrame
	state  core.GameState
	cursor ebiten.CursorModeType

	pendingW, pendingH int
}

// NewApp resets the game for the given grid and seeds its high score.
func NewApp(game core.Game, cfg core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if opts.Store != nil {
		high, err := opts.Store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		game.SetHighScore(high)
	}

	return &App{
		game:     game,
		config:   cfg,
		opts:     opts,
		logger:   logger,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:    core.NewInputFrame(),
		state:    game.State(),
		cursor:   -1,
		pendingW: cfg.ScreenW,
		pendingH: cfg.ScreenH,
	}
}

// Update runs one simulation tick.
func (a *App) Update() error {
	a.applyResize()

	pollInput(&a.frame)
	result := a.game.Step(a.frame)
	a.frame.Clear()

	a.state = result.State
	if a.opts.Sound != nil {
		a.opts.Sound.PlayEvents(result.Events)
	}
	a.logEvents(result)

	if result.Has(core.EventGameOver) {
		a.saveScore(result.State)
	}
	if result.Quit {
		if a.state.Active {
			a.saveScore(a.state)
		}
		return ebiten.Termination
	}

	if mode := cursorMode(a.state.PointerVisible); mode != a.cursor {
		ebiten.SetCursorMode(mode)
		a.cursor = mode
	}
	return nil
}

// applyResize hands a window size change to the game.
func (a *App) applyResize() {
	if a.pendingW == a.config.ScreenW && a.pendingH == a.config.ScreenH {
		return
	}
	a.config.ScreenW, a.config.ScreenH = a.pendingW, a.pendingH
	a.screen.Resize(a.pendingW, a.pendingH)

	a.game.Resize(a.pendingW, a.pendingH)
	a.state = a.game.State()
}

// Draw renders the game into the window.
func (a *App) Draw(dst *ebiten.Image) {
	a.game.Render(a.screen)
	drawScreen(dst, a.screen)
}

// Layout keeps one pixel per pixel and records the grid that fits.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.pendingW, a.pendingH = gridSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (a *App) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventNewGame, core.EventLevelUp, core.EventGameOver:
			a.logger.Info(e.String(), "player", a.opts.Player, "score", result.State.Score, "level", result.State.Level)
		case core.EventShipHit:
			a.logger.Debug(e.String(), "ships_left", result.State.ShipsLeft)
		}
	}
}

func (a *App) saveScore(st core.GameState) {
	if a.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := a.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: a.game.ID(),
		Player: a.opts.Player,
		Score:  st.Score,
		Level:  st.Level,
	})
	if err != nil {
		a.logger.Error("could not save score", "error", err)
	}
}

// Run opens a window sized for the configured grid and plays until the
// game quits or the window is closed.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err := ebiten.RunGame(NewApp(game, cfg, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
