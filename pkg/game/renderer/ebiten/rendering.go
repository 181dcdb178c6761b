package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.Valid || e.sansFontSource == nil {
		return
	}

	screenWidth := screen.Bounds().Dx()
	l := computeLayout(snap, screenWidth, e.tileSize, int(e.getUIFontSize()), e.getTextWidth)
	e.layout = l

	e.drawButtons(screen, &snap, l)
	e.drawHeader(screen, &snap, l)

	// Board background with a margin
	b := l.board
	vector.DrawFilledRect(screen, float32(b.Min.X-bevelWidth*2), float32(b.Min.Y-bevelWidth*2),
		float32(b.Dx()+bevelWidth*4), float32(b.Dy()+bevelWidth*4), colorBoardBackground, false)

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			e.drawTile(screen, &snap, l, row, col)
		}
	}

	e.drawMessages(screen, &snap, l)

	if snap.Menu != nil {
		e.drawMenuOverlay(screen, snap.Menu)
	}
}

// drawButtons draws the difficulty selector
func (e *EbitenRenderer) drawButtons(screen *ebiten.Image, snap *renderer.Snapshot, l layout) {
	for _, btn := range l.buttons {
		bg, border := colorButton, colorSubtle
		if btn.code == snap.Difficulty.String() {
			bg, border = colorButtonActive, colorPanelBorder
		}
		r := btn.bounds
		drawRoundedRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 6, 1, bg, border)
		e.drawColoredText(screen, btn.label, r.Min.X+buttonPadX, r.Min.Y+buttonPadY, colorText)
	}
}

// drawHeader draws the flag counter, the restart face and the timer
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderer.Snapshot, l layout) {
	flags := fmt.Sprintf("%s %03d", renderer.FlagLabel(), snap.RemainingFlags)
	e.drawColoredText(screen, flags, l.flags.X, l.flags.Y, colorText)

	clock := fmt.Sprintf("%s %03d", renderer.TimeLabel(), snap.ElapsedTime)
	e.drawColoredText(screen, clock, l.clock.X-e.getTextWidth(clock), l.clock.Y, colorText)

	faceColor := colorAction
	switch snap.Status {
	case state.Won:
		faceColor = colorWon
	case state.Lost:
		faceColor = colorLost
	}
	f := l.face.bounds
	e.drawRaised(screen, f)
	face := e.getTitleFontFace()
	w := e.getTextWidthWithFace(snap.Face, face)
	e.drawColoredTextWithFace(screen, snap.Face, f.Min.X+(f.Dx()-w)/2, f.Min.Y+(f.Dy()-int(face.Size))/2, faceColor, face)
}

// drawRaised draws a bevelled, unpressed tile
func (e *EbitenRenderer) drawRaised(screen *ebiten.Image, r image.Rectangle) {
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, colorTileShadow, false)
	vector.DrawFilledRect(screen, x, y, w-bevelWidth, h-bevelWidth, colorTileHighlight, false)
	vector.DrawFilledRect(screen, x+bevelWidth, y+bevelWidth, w-bevelWidth*2, h-bevelWidth*2, colorTileRaised, false)
}

// drawTile draws one board cell
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, snap *renderer.Snapshot, l layout, row, col int) {
	g := snap.GlyphAt(row, col)
	x, y := l.board.Min.X+col*l.tile, l.board.Min.Y+row*l.tile
	r := image.Rect(x, y, x+l.tile, y+l.tile)

	switch {
	case g.IsCovered():
		e.drawRaised(screen, r)
	case g.Kind == renderer.GlyphMine:
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(l.tile), float32(l.tile), colorMineBg, false)
	default:
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(l.tile), float32(l.tile), colorTileGrid, false)
		vector.DrawFilledRect(screen, float32(x+1), float32(y+1), float32(l.tile-1), float32(l.tile-1), colorTileOpen, false)
	}

	switch g.Kind {
	case renderer.GlyphFlag:
		e.drawCenteredChar(screen, renderer.IconFlag, x, y, colorFlag)
	case renderer.GlyphMine:
		e.drawCenteredChar(screen, renderer.IconMine, x, y, colorMine)
	case renderer.GlyphNumber:
		e.drawCenteredChar(screen, g.Text(), x, y, numberColor(g.Number))
	}

	if row == snap.CursorRow && col == snap.CursorCol && !snap.Status.IsTerminal() {
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(l.tile)-2, float32(l.tile)-2, 2, colorCursor, false)
	}
}

// numberColor brightens the classic palette for the dark background
func numberColor(n int) color.Color {
	c := renderer.NumberColor(n)
	lift := func(v uint8) uint8 { return uint8(min(int(v)+60, 255)) }
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), 255}
}

// drawMessages draws the banner and the latest messages below the board
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderer.Snapshot, l layout) {
	y := l.messages.Y
	if snap.Banner != "" {
		col := colorWon
		if snap.Status == state.Lost {
			col = colorLost
		}
		face := e.getTitleFontFace()
		w := e.getTextWidthWithFace(snap.Banner, face)
		e.drawColoredTextWithFace(screen, snap.Banner, l.board.Min.X+(l.board.Dx()-w)/2, y, col, face)
		y += int(face.Size) + rowSpacing
	}

	lineHeight := int(e.getUIFontSize()) + 6
	msgs := snap.Messages
	if len(msgs) > messageRows {
		msgs = msgs[len(msgs)-messageRows:]
	}
	for _, msg := range msgs {
		e.drawColoredTextSegments(screen, parseMarkup(msg), l.messages.X, y)
		y += lineHeight
	}
}
