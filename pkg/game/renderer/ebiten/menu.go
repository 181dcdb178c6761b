package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minesweeper/pkg/game/renderer"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, vector.Clockwise)
	p.Close()
}

// drawRoundedRect fills a rounded rectangle and strokes its border
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color) {
	var path vector.Path
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	if borderWidth <= 0 {
		return
	}
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenuOverlay draws the open menu centred on the screen
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, m *renderer.MenuSnapshot) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Dim everything behind the menu
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), color.RGBA{0, 0, 0, 140}, false)

	titleFace := e.getTitleFontFace()
	lineHeight := int(e.getUIFontSize()) + 14
	padding := 24

	width := e.getTextWidthWithFace(m.Title, titleFace)
	for _, label := range m.Labels {
		width = max(width, e.getTextWidth(label)+buttonPadX*2)
	}
	width = max(width, e.getTextWidth(m.HelpText)) + padding*2

	height := padding*2 + int(titleFace.Size) + rowSpacing*2 + lineHeight*len(m.Labels)
	if m.HelpText != "" {
		height += lineHeight
	}

	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	drawRoundedRect(screen, float32(x), float32(y), float32(width), float32(height), 10, 2, colorPanelBackground, colorPanelBorder)

	cy := y + padding
	e.drawColoredTextWithFace(screen, m.Title, x+padding, cy, colorAction, titleFace)
	cy += int(titleFace.Size) + rowSpacing*2

	for i, label := range m.Labels {
		col := colorText
		switch {
		case i == m.Selected:
			drawRoundedRect(screen, float32(x+padding-buttonPadX/2), float32(cy-4), float32(width-padding*2+buttonPadX), float32(lineHeight-4), 6, 0, colorButtonActive, nil)
			col = colorWon
		case !m.Selectable[i]:
			col = colorSubtle
		}
		e.drawColoredText(screen, label, x+padding, cy, col)
		cy += lineHeight
	}

	if m.HelpText != "" {
		e.drawColoredText(screen, m.HelpText, x+padding, cy, colorSubtle)
	}
}
