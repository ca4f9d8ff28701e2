package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Cell size in pixels. The debug font glyph is 6x16.
const (
	CellW = 10
	CellH = 16

	glyphInsetX = 2
)

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// rgb maps game colors onto the xterm palette.
var rgb = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 0xcd, A: 0xff},
	core.ColorGreen:         {G: 0xcd, A: 0xff},
	core.ColorYellow:        {R: 0xcd, G: 0xcd, A: 0xff},
	core.ColorBlue:          {R: 0x20, G: 0x40, B: 0xee, A: 0xff},
	core.ColorMagenta:       {R: 0xcd, B: 0xcd, A: 0xff},
	core.ColorCyan:          {G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, A: 0xff},
	core.ColorBrightGreen:   {G: 0xff, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, A: 0xff},
	core.ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

// tint returns the fill used behind a cell. The debug font only draws
// white, so light colors get no fill and stay readable as plain text.
func tint(c core.Color) (color.RGBA, bool) {
	switch c {
	case core.ColorDefault, core.ColorWhite, core.ColorBrightWhite:
		return color.RGBA{}, false
	}
	fill, ok := rgb[c]
	return fill, ok
}

// drawScreen paints a screen buffer cell by cell.
func drawScreen(dst *ebiten.Image, s *core.Screen) {
	dst.Fill(background)

	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			px, py := x*CellW, y*CellH
			if fill, ok := tint(cell.Color); ok {
				vector.DrawFilledRect(dst, float32(px), float32(py), CellW, CellH, fill, false)
			}
			ebitenutil.DebugPrintAt(dst, string(cell.Rune), px+glyphInsetX, py)
		}
	}
}

// cellAt converts a pixel position to screen cell coordinates.
func cellAt(px, py int) (int, int) {
	return px / CellW, py / CellH
}

// gridSize returns how many cells fit in a window of the given pixel size.
func gridSize(w, h int) (int, int) {
	return w / CellW, h / CellH
}
