package tcell

import (
	"fmt"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/renderer"
)

// cellWidth is the number of screen columns per board cell.
const cellWidth = 2

// rect is a screen-space hit area
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// button is a clickable label that produces a raw input code
type button struct {
	rect
	label string
	code  string
}

// layout records where the last frame put everything, for hit testing
type layout struct {
	buttons []button
	face    button
	board   rect
	rows    int
	cols    int
}

// computeLayout places the difficulty bar, header and board centred in a
// screen of width columns.
func computeLayout(snap renderer.Snapshot, width int) layout {
	l := layout{rows: snap.Rows, cols: snap.Cols}

	var bar []button
	barWidth := 0
	for _, level := range difficulty.All() {
		label := fmt.Sprintf("[%s]", level.Label())
		bar = append(bar, button{rect: rect{w: len([]rune(label)), h: 1}, label: label, code: level.String()})
		barWidth += len([]rune(label)) + 1
	}
	barWidth--
	x := max((width-barWidth)/2, 0)
	for i := range bar {
		bar[i].x, bar[i].y = x, 0
		x += bar[i].w + 1
	}
	l.buttons = bar

	boardWidth := snap.Cols * cellWidth
	l.board = rect{x: max((width-boardWidth)/2, 1), y: 5, w: boardWidth, h: snap.Rows}

	faceLabel := "[" + snap.Face + "]"
	fw := len([]rune(faceLabel))
	l.face = button{rect: rect{x: max((width-fw)/2, 0), y: 2, w: fw, h: 1}, label: faceLabel, code: "face"}
	return l
}

// cellAt returns the board cell under screen position (x, y).
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	if !l.board.contains(x, y) {
		return 0, 0, false
	}
	return y - l.board.y, (x - l.board.x) / cellWidth, true
}

// hit turns a mouse press at (x, y) into a raw input event. Right clicks
// only count on the board.
func (l layout) hit(x, y int, right bool) (input.RawInput, bool) {
	if row, col, ok := l.cellAt(x, y); ok {
		code := "mouse_left"
		if right {
			code = "mouse_right"
		}
		return input.RawInput{Device: input.DeviceMouse, Code: code, Row: row, Col: col, Targeted: true}, true
	}
	if right {
		return input.RawInput{}, false
	}
	if l.face.contains(x, y) {
		return input.RawInput{Device: input.DeviceMouse, Code: l.face.code}, true
	}
	for _, b := range l.buttons {
		if b.contains(x, y) {
			return input.RawInput{Device: input.DeviceMouse, Code: b.code}, true
		}
	}
	return input.RawInput{}, false
}
