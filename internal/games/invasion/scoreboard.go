package invasion

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Scoreboard keeps the prepared text of the score, high score, level and
// remaining ships so drawing a frame does no formatting.
type Scoreboard struct {
	Score     string
	HighScore string
	Level     string
	Ships     int
}

// PrepScore formats the score, rounded to the nearest ten.
func (b *Scoreboard) PrepScore(score int) {
	b.Score = FormatScore(score)
}

// PrepHighScore formats the high score, rounded to the nearest ten.
func (b *Scoreboard) PrepHighScore(highScore int) {
	b.HighScore = FormatScore(highScore)
}

// PrepLevel formats the level.
func (b *Scoreboard) PrepLevel(level int) {
	b.Level = strconv.Itoa(level)
}

// PrepShips records how many ships to show.
func (b *Scoreboard) PrepShips(ships int) {
	b.Ships = max(ships, 0)
}

// PrepAll refreshes every display from the stats.
func (b *Scoreboard) PrepAll(st *Stats) {
	b.PrepScore(st.Score)
	b.PrepHighScore(st.HighScore)
	b.PrepLevel(st.Level)
	b.PrepShips(st.ShipsLeft)
}

// Draw renders the remaining ships top left, the high score top centre, the
// score top right and the level under the score.
func (b *Scoreboard) Draw(dst *core.Screen, s *Settings) {
	right := dst.Width() - 1

	dst.DrawTextColor(1, 0, strings.Repeat(string(shipGlyph)+" ", b.Ships), s.ShipColor)
	dst.DrawTextCentered(0, "High "+b.HighScore, s.TextColor)
	dst.DrawTextRight(right, 0, "Score "+b.Score, s.TextColor)
	dst.DrawTextRight(right, 1, "Level "+b.Level, s.TextColor)
}

// FormatScore rounds a score to the nearest ten (halves to even) and groups
// its digits with commas.
func FormatScore(score int) string {
	rounded := int64(math.RoundToEven(float64(score)/10)) * 10
	return humanize.Comma(rounded)
}
