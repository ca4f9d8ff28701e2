package invasion

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Render draws the current frame: background, bullets, ship, fleet, the
// scoreboard and, while no game is running, the Play button.
func (g *Game) Render(dst *core.Screen) {
	s := &g.settings
	dst.Fill(' ', s.BgColor)

	if g.screenTooSmall {
		g.drawTooSmall(dst)
		return
	}

	g.bullets.Each(func(_ int, b *Bullet) {
		dst.DrawRect(b.Rect(s), bulletGlyph, s.BulletColor)
	})

	drawEntity(dst, g.ship.Rect(s), shipSprite, shipGlyph, s.ShipColor)

	g.fleet.Each(func(_ int, a *Alien) {
		sprite := alienSprites[a.Row%len(alienSprites)]
		drawEntity(dst, a.Rect(s), sprite, alienGlyph, s.AlienColor(a.Row))
	})

	g.board.Draw(dst, s)

	if g.paused {
		dst.DrawTextCentered(s.ScreenH/2, " PAUSED ", s.TextColor)
	}

	if !g.stats.Active {
		if g.played {
			dst.DrawTextCentered(g.button.Rect.Y-2, " GAME OVER ", core.ColorBrightRed)
		}
		g.button.Draw(dst, s.TextColor)
		dst.DrawTextCentered(g.button.Rect.Bottom()+1, " click Play or press Enter ", core.ColorGray)
	}
}

// drawEntity draws a sprite when it matches the rect, otherwise fills the
// rect with a glyph.
func drawEntity(dst *core.Screen, r core.Rect, sprite []string, glyph rune, c core.Color) {
	if spriteFits(sprite, r) {
		dst.DrawSprite(r.X, r.Y, sprite, c)
		return
	}
	dst.DrawRect(r, glyph, c)
}

func spriteFits(sprite []string, r core.Rect) bool {
	if len(sprite) != r.H {
		return false
	}
	for _, line := range sprite {
		if utf8.RuneCountInString(line) != r.W {
			return false
		}
	}
	return true
}

func (g *Game) drawTooSmall(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(midY, fmt.Sprintf("need %dx%d, have %dx%d",
		g.cfg.Screen.MinWidth, g.cfg.Screen.MinHeight, dst.Width(), dst.Height()), g.settings.TextColor)
}
