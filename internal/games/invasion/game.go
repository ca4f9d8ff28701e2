// Package invasion implements Alien Invasion: the player moves a ship along
// the bottom of the screen and shoots down a descending fleet of aliens.
//
// The game is a pure state machine stepped once per tick. It never reads a
// clock or a device; platforms feed it input frames and draw its screen.
package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// GameID is the identifier scores are stored under.
const GameID = "invasion"

// Game holds the whole session: settings, stats, entities and UI widgets.
type Game struct {
	cfg     config.InvasionConfig
	runtime core.RuntimeConfig

	settings Settings
	stats    Stats
	board    Scoreboard
	button   Button

	ship    Ship
	fleet   Group[Alien]
	bullets Group[Bullet]

	tick           int
	pausedUntil    int  // Hit pause lasts while tick < pausedUntil
	paused         bool // Pause toggled by the player
	pointerVisible bool
	played         bool // At least one game started, so GAME OVER can be shown
	screenTooSmall bool

	pending []core.InputEvent // Input held back during the hit pause
	events  []core.GameEvent
}

// New creates a game from a validated config. Call Reset before stepping.
func New(cfg config.InvasionConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset builds a fresh session. The game starts inactive with a fleet on
// screen behind the Play button. The high score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	highScore := g.stats.HighScore

	g.runtime = runtime
	g.settings = NewSettings(g.cfg, runtime)
	g.stats = NewStats(g.settings.ShipLimit)
	g.stats.HighScore = highScore
	g.stats.Active = false

	g.tick = 0
	g.pausedUntil = 0
	g.paused = false
	g.pointerVisible = true
	g.played = false
	g.pending = nil
	g.events = nil

	g.fleet.Clear()
	g.bullets.Clear()
	g.ship = Ship{}
	g.layout()

	CreateFleet(&g.settings, g.settings.ShipHeight, &g.fleet)
	g.ship.Center(&g.settings)
	g.board.PrepAll(&g.stats)
}

// Resize adapts the playfield to a new screen size. Before the first game
// the idle fleet is rebuilt for the new size. Otherwise entities keep their
// positions, so a round in play or the final picture of the last one
// survives; the ship stays on the bottom row.
func (g *Game) Resize(width, height int) {
	if !g.played && !g.stats.Active {
		runtime := g.runtime
		runtime.ScreenW, runtime.ScreenH = width, height
		g.Reset(runtime)
		return
	}

	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.settings.ScreenW = width
	g.settings.ScreenH = height
	g.layout()

	g.ship.Y = height - g.settings.ShipHeight
	g.ship.X = core.Clamp(g.ship.X, 0, float64(max(width-g.settings.ShipWidth, 0)))
}

// layout recomputes everything that depends on the screen size.
func (g *Game) layout() {
	g.button = NewButton(&g.settings, "Play")
	g.screenTooSmall = g.settings.ScreenW < g.cfg.Screen.MinWidth ||
		g.settings.ScreenH < g.cfg.Screen.MinHeight
}

// SetHighScore seeds the high score, typically from the score store.
// Lower values are ignored.
func (g *Game) SetHighScore(score int) {
	if score > g.stats.HighScore {
		g.stats.HighScore = score
		g.board.PrepHighScore(score)
	}
}

// Step advances the game by one tick: dispatch input, then move the ship,
// the bullets and the fleet.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	if g.checkEvents(in) {
		return g.result(true)
	}

	if g.screenTooSmall || !g.stats.Active || g.paused || g.hitPaused() {
		return g.result(false)
	}

	g.ship.Update(&g.settings)
	g.updateBullets()
	g.updateAliens()

	return g.result(false)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.stats.Score,
		HighScore:      g.stats.HighScore,
		Level:          g.stats.Level,
		ShipsLeft:      g.stats.ShipsLeft,
		Active:         g.stats.Active,
		Paused:         g.paused || g.hitPaused(),
		PointerVisible: g.pointerVisible,
	}
}

func (g *Game) result(quit bool) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
		Quit:   quit,
	}
}

func (g *Game) emit(e core.GameEvent) {
	g.events = append(g.events, e)
}
