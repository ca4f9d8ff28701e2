package core

// RuntimeConfig contains what the platform tells a game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells
	ScreenH  int // Screen height in cells
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the snapshot a game hands back to the platform every tick.
type GameState struct {
	Score          int
	HighScore      int
	Level          int
	ShipsLeft      int
	Active         bool // A round is being played (false before the first start and after game over)
	Paused         bool // User pause or the freeze after losing a ship
	PointerVisible bool // The platform should show the pointer / capture clicks
}

// GameEvent is something that happened during a tick that a platform may
// react to with sound or logging.
type GameEvent int

const (
	EventNone GameEvent = iota
	EventNewGame
	EventFired
	EventAlienDestroyed
	EventLevelUp
	EventShipHit
	EventGameOver
)

// String returns a human-readable name for the event.
func (e GameEvent) String() string {
	switch e {
	case EventNewGame:
		return "new_game"
	case EventFired:
		return "fired"
	case EventAlienDestroyed:
		return "alien_destroyed"
	case EventLevelUp:
		return "level_up"
	case EventShipHit:
		return "ship_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []GameEvent
	Quit   bool // A quit event or the quit key was seen; the platform should exit
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e GameEvent) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// Game is what a platform front-end drives. Games contain pure logic; the
// platform handles device input, timing, sound and presentation.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given screen. The high score
	// survives a reset.
	Reset(cfg RuntimeConfig)

	// Resize adapts to a new screen size without losing the round in play
	// or the final picture of the last one.
	Resize(width, height int)

	// SetHighScore seeds the high score, typically from persistent storage.
	SetHighScore(score int)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
