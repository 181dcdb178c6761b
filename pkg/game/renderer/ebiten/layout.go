package ebiten

import (
	"image"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/renderer"
)

// button is a clickable area that produces a raw input code
type button struct {
	bounds image.Rectangle
	label  string
	code   string
}

// layout is the pixel geometry of one frame
type layout struct {
	buttons  []button
	face     button
	flags    image.Point // top-left of the flag counter text
	clock    image.Point // top-right of the timer text
	board    image.Rectangle
	tile     int
	messages image.Point
}

// layoutCodes are the raw codes emitted by the face and difficulty buttons.
var layoutCodes = func() map[string]bool {
	codes := map[string]bool{"face": true}
	for _, level := range difficulty.All() {
		codes[level.String()] = true
	}
	return codes
}()

// computeLayout places the difficulty buttons, the header and the board,
// centred horizontally. measure returns the pixel width of UI text.
func computeLayout(snap renderer.Snapshot, screenWidth, tile int, uiHeight int, measure func(string) int) layout {
	l := layout{tile: tile}

	// Difficulty buttons
	y := margin
	bh := uiHeight + buttonPadY*2
	total := 0
	for _, level := range difficulty.All() {
		label := level.Label()
		w := measure(label) + buttonPadX*2
		l.buttons = append(l.buttons, button{
			bounds: image.Rect(0, y, w, y+bh),
			label:  label,
			code:   level.String(),
		})
		total += w
	}
	total += rowSpacing * (len(l.buttons) - 1)
	x := max((screenWidth-total)/2, margin)
	for i := range l.buttons {
		w := l.buttons[i].bounds.Dx()
		l.buttons[i].bounds = image.Rect(x, y, x+w, y+bh)
		x += w + rowSpacing
	}

	// Board, placed first so the header can align with it
	boardW, boardH := snap.Cols*tile, snap.Rows*tile
	faceSize := tile + faceOutset
	headerY := y + bh + rowSpacing
	bx := max((screenWidth-boardW)/2, margin)
	by := headerY + faceSize + rowSpacing
	l.board = image.Rect(bx, by, bx+boardW, by+boardH)

	// Header: flags left, face centred, timer right
	fx := bx + (boardW-faceSize)/2
	l.face = button{
		bounds: image.Rect(fx, headerY, fx+faceSize, headerY+faceSize),
		label:  snap.Face,
		code:   "face",
	}
	textY := headerY + (faceSize-uiHeight)/2
	l.flags = image.Pt(bx, textY)
	l.clock = image.Pt(bx+boardW, textY)

	l.messages = image.Pt(bx, l.board.Max.Y+rowSpacing)
	return l
}

// cellAt returns the board cell under pixel (x, y)
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	p := image.Pt(x, y)
	if l.tile <= 0 || !p.In(l.board) {
		return 0, 0, false
	}
	return (y - l.board.Min.Y) / l.tile, (x - l.board.Min.X) / l.tile, true
}

// hit turns a click at (x, y) into a raw input event. Right clicks only
// count on the board.
func (l layout) hit(x, y int, right bool) (engineinput.RawInput, bool) {
	if row, col, ok := l.cellAt(x, y); ok {
		code := "mouse_left"
		if right {
			code = "mouse_right"
		}
		return engineinput.RawInput{Device: engineinput.DeviceMouse, Code: code, Row: row, Col: col, Targeted: true}, true
	}
	if right {
		return engineinput.RawInput{}, false
	}
	p := image.Pt(x, y)
	if p.In(l.face.bounds) {
		return engineinput.RawInput{Device: engineinput.DeviceMouse, Code: l.face.code}, true
	}
	for _, b := range l.buttons {
		if p.In(b.bounds) {
			return engineinput.RawInput{Device: engineinput.DeviceMouse, Code: b.code}, true
		}
	}
	return engineinput.RawInput{}, false
}
