package renderer

import (
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/state"
)

// MenuSnapshot is a copy of an open menu
type MenuSnapshot struct {
	Title      string
	Labels     []string
	Selectable []bool
	Selected   int
	HelpText   string
}

// Snapshot holds a consistent copy of everything a frame shows, so renderers
// drawing on their own goroutine never read live game state.
type Snapshot struct {
	Valid          bool
	Version        uint64
	Rows           int
	Cols           int
	Glyphs         []Glyph // row-major
	Status         state.Status
	Difficulty     difficulty.Level
	RemainingFlags int
	ElapsedTime    int
	CursorRow      int
	CursorCol      int
	Face           string
	Banner         string
	Messages       []string
	Menu           *MenuSnapshot
}

// TakeSnapshot copies the visible state of g
func TakeSnapshot(g *state.Game) Snapshot {
	if g == nil || g.Board == nil {
		return Snapshot{}
	}

	gameOver := g.IsGameOver()
	s := Snapshot{
		Valid:          true,
		Version:        g.Version,
		Rows:           g.Board.Rows(),
		Cols:           g.Board.Cols(),
		Glyphs:         make([]Glyph, 0, g.Board.Rows()*g.Board.Cols()),
		Status:         g.Status,
		Difficulty:     g.Difficulty,
		RemainingFlags: g.RemainingFlags,
		ElapsedTime:    g.ElapsedTime,
		CursorRow:      g.CursorRow,
		CursorCol:      g.CursorCol,
		Face:           FaceFor(g.Status),
		Banner:         BannerFor(g.Status),
		Messages:       append([]string(nil), g.Messages...),
	}
	g.Board.ForEachCell(func(_, _ int, c board.Cell) {
		s.Glyphs = append(s.Glyphs, CellGlyph(c, gameOver))
	})

	if m := g.Menu; m != nil {
		ms := &MenuSnapshot{Title: m.Title, Selected: m.Selected, HelpText: m.HelpText}
		for _, item := range m.Items {
			ms.Labels = append(ms.Labels, item.GetLabel())
			ms.Selectable = append(ms.Selectable, item.IsSelectable())
		}
		s.Menu = ms
	}
	return s
}

// GlyphAt returns the glyph at (row, col); out of range gives GlyphHidden
func (s Snapshot) GlyphAt(row, col int) Glyph {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return Glyph{}
	}
	return s.Glyphs[row*s.Cols+col]
}
