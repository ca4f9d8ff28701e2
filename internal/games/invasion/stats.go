package invasion

// Stats tracks the state of a play session.
type Stats struct {
	Score     int
	HighScore int // Survives Reset
	ShipsLeft int
	Level     int
	Active    bool

	shipLimit int
}

// NewStats returns inactive stats for a session with the given ship limit.
func NewStats(shipLimit int) Stats {
	s := Stats{shipLimit: shipLimit}
	s.Reset()
	return s
}

// Reset restores the per-game counters. The high score and the active flag
// are left alone.
func (s *Stats) Reset() {
	s.ShipsLeft = s.shipLimit
	s.Score = 0
	s.Level = 1
}

// CheckHighScore raises the high score when the current score strictly
// exceeds it. Reports whether it changed.
func (s *Stats) CheckHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
