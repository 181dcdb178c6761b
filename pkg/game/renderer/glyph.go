package renderer

import (
	"image/color"
	"strconv"

	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/state"
)

// Icons used by the text renderers
const (
	IconHidden = " "
	IconEmpty  = " "
	IconFlag   = "⚑"
	IconMine   = "✱"
)

// Restart control faces
const (
	FacePlaying = ":)"
	FaceWon     = "B)"
	FaceLost    = "X("
)

// GlyphKind is what a cell shows
type GlyphKind int

const (
	GlyphHidden GlyphKind = iota
	GlyphFlag
	GlyphMine
	GlyphNumber
	GlyphEmpty
)

// Glyph is the visible face of one cell
type Glyph struct {
	Kind   GlyphKind
	Number int // 1..8 for GlyphNumber
}

// CellGlyph decides what a cell shows. Once the game is over every mine
// that isn't flagged is shown, revealed or not.
func CellGlyph(c board.Cell, gameOver bool) Glyph {
	if gameOver && c.IsMine() && !c.IsFlagged {
		return Glyph{Kind: GlyphMine}
	}
	if !c.IsRevealed {
		if c.IsFlagged {
			return Glyph{Kind: GlyphFlag}
		}
		return Glyph{Kind: GlyphHidden}
	}
	switch {
	case c.IsMine():
		return Glyph{Kind: GlyphMine}
	case c.Value > 0:
		return Glyph{Kind: GlyphNumber, Number: c.Value}
	default:
		return Glyph{Kind: GlyphEmpty}
	}
}

// IsCovered reports whether the glyph is drawn as a raised, unrevealed tile.
func (g Glyph) IsCovered() bool {
	return g.Kind == GlyphHidden || g.Kind == GlyphFlag
}

// Text returns the glyph's terminal text
func (g Glyph) Text() string {
	switch g.Kind {
	case GlyphFlag:
		return IconFlag
	case GlyphMine:
		return IconMine
	case GlyphNumber:
		return strconv.Itoa(g.Number)
	case GlyphEmpty:
		return IconEmpty
	default:
		return IconHidden
	}
}

// Style returns the text style for the glyph
func (g Glyph) Style() TextStyle {
	switch g.Kind {
	case GlyphFlag:
		return StyleFlag
	case GlyphMine:
		return StyleMine
	case GlyphNumber:
		return StyleNumber
	case GlyphEmpty:
		return StyleEmpty
	default:
		return StyleHidden
	}
}

// numberColors is the classic palette for counts 1..8
var numberColors = [9]color.RGBA{
	{0, 0, 0, 255},
	{25, 118, 210, 255},
	{56, 142, 60, 255},
	{211, 47, 47, 255},
	{123, 31, 162, 255},
	{255, 143, 0, 255},
	{0, 151, 167, 255},
	{66, 66, 66, 255},
	{158, 158, 158, 255},
}

// NumberColor returns the colour for a count of n adjacent mines
func NumberColor(n int) color.RGBA {
	if n < 0 || n >= len(numberColors) {
		return numberColors[0]
	}
	return numberColors[n]
}

// FaceFor returns the restart control face for a status
func FaceFor(s state.Status) string {
	switch s {
	case state.Won:
		return FaceWon
	case state.Lost:
		return FaceLost
	default:
		return FacePlaying
	}
}

// BannerFor returns the end-of-game banner, or "" while the game runs
func BannerFor(s state.Status) string {
	switch s {
	case state.Won:
		return gotext.Get("You Win!")
	case state.Lost:
		return gotext.Get("Game Over!")
	default:
		return ""
	}
}

// FlagLabel and TimeLabel return translated header captions
func FlagLabel() string { return gotext.Get("Flags") }
func TimeLabel() string { return gotext.Get("Time") }
