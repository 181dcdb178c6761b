package gameplay

import (
	"minesweeper/pkg/engine/world"
)

// MoveCursor moves the keyboard cursor one cell, stopping at the edges.
func (s *Session) MoveCursor(dir world.Direction) {
	g := s.Game
	if g.Board == nil || !dir.IsValid() {
		return
	}
	next := g.Board.Grid().Clamp(world.Pos(g.CursorRow, g.CursorCol).Step(dir))
	if next.Row == g.CursorRow && next.Col == g.CursorCol {
		return
	}
	g.CursorRow, g.CursorCol = next.Row, next.Col
	g.Touch()
}

// SetCursor puts the cursor on (row, col) if it is on the board.
func (s *Session) SetCursor(row, col int) {
	g := s.Game
	if g.Board == nil || !g.Board.InBounds(row, col) {
		return
	}
	if g.CursorRow != row || g.CursorCol != col {
		g.CursorRow, g.CursorCol = row, col
		g.Touch()
	}
}
