package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"minesweeper/pkg/game/renderer"
)

// styleMarkup maps text styles back to the markup function that draws them
var styleMarkup = map[renderer.TextStyle]string{
	renderer.StyleAction: "ACTION",
	renderer.StyleFlag:   "FLAG",
	renderer.StyleMine:   "MINE",
	renderer.StyleWon:    "WON",
	renderer.StyleLost:   "LOST",
	renderer.StyleSubtle: "SUBTLE",
	renderer.StyleTitle:  "TITLE",
}

// markupColors maps markup functions to draw colours
var markupColors = map[string]color.Color{
	"ACTION": colorAction,
	"FLAG":   colorFlag,
	"MINE":   colorLost,
	"WON":    colorWon,
	"LOST":   colorLost,
	"SUBTLE": colorSubtle,
	"TITLE":  colorAction,
}

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup splits msg into coloured segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		segColor, ok := markupColors[function]
		if !ok {
			segColor = colorText
		}
		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	return segments
}

// drawCenteredChar draws a glyph centred in the tile whose top-left is (x, y)
func (e *EbitenRenderer) drawCenteredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	face := e.getMonoFontFace()
	w, h := text.Measure(char, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(e.tileSize)-w)/2, float64(y)+(float64(e.tileSize)-h)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, char, face, op)
}

// drawColoredText draws text with a specific color using the UI font
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face,
// (x, y) being the top-left corner.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) int {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return int(w)
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) int {
	w, _ := text.Measure(str, face, 0)
	return int(w)
}
