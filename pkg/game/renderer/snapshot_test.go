package renderer

import (
	"testing"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/menu"
	"minesweeper/pkg/game/state"
)

func snapshotGame(t *testing.T) *state.Game {
	t.Helper()
	b, err := board.NewWithMines(3, 3, []world.Position{world.Pos(0, 0), world.Pos(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	g := state.NewGame()
	g.Board = b
	g.RemainingFlags = 2
	return g
}

func TestTakeSnapshot(t *testing.T) {
	g := snapshotGame(t)
	g.Board.ToggleFlag(0, 0)
	g.RemainingFlags--
	g.Board.Reveal(0, 1)
	g.Status = state.Playing
	g.ElapsedTime = 4
	g.Version = 9

	s := TakeSnapshot(g)

	if !s.Valid || s.Rows != 3 || s.Cols != 3 || len(s.Glyphs) != 9 {
		t.Fatalf("snapshot shape = valid %v %dx%d %d glyphs", s.Valid, s.Rows, s.Cols, len(s.Glyphs))
	}
	if s.GlyphAt(0, 0).Kind != GlyphFlag {
		t.Errorf("(0,0) = %+v, want flag", s.GlyphAt(0, 0))
	}
	if got := s.GlyphAt(0, 1); got.Kind != GlyphNumber || got.Number != 1 {
		t.Errorf("(0,1) = %+v, want number 1", got)
	}
	if s.GlyphAt(2, 2).Kind != GlyphHidden {
		t.Errorf("(2,2) = %+v, want hidden while playing", s.GlyphAt(2, 2))
	}
	if s.RemainingFlags != 1 || s.ElapsedTime != 4 || s.Version != 9 || s.Face != FacePlaying {
		t.Errorf("header = flags %d time %d version %d face %q", s.RemainingFlags, s.ElapsedTime, s.Version, s.Face)
	}
	if s.Menu != nil {
		t.Error("Menu set without an open menu")
	}
}

func TestTakeSnapshot_LostShowsMines(t *testing.T) {
	g := snapshotGame(t)
	g.Board.ToggleFlag(0, 0)
	g.Status = state.Lost

	s := TakeSnapshot(g)
	if s.GlyphAt(2, 2).Kind != GlyphMine {
		t.Errorf("(2,2) = %+v, want mine after loss", s.GlyphAt(2, 2))
	}
	if s.GlyphAt(0, 0).Kind != GlyphFlag {
		t.Errorf("(0,0) = %+v, flagged mine should keep its flag", s.GlyphAt(0, 0))
	}
	if s.Face != FaceLost || s.Banner == "" {
		t.Errorf("face %q banner %q", s.Face, s.Banner)
	}
}

func TestTakeSnapshot_Menu(t *testing.T) {
	g := snapshotGame(t)
	g.Menu = menu.NewGameMenu(difficulty.Beginner)

	s := TakeSnapshot(g)
	if s.Menu == nil || len(s.Menu.Labels) != len(g.Menu.Items) {
		t.Fatalf("menu snapshot = %+v", s.Menu)
	}
	g.Menu.Next()
	if s.Menu.Selected != 0 {
		t.Error("menu snapshot follows live menu")
	}
}

func TestTakeSnapshot_Empty(t *testing.T) {
	if TakeSnapshot(nil).Valid || TakeSnapshot(state.NewGame()).Valid {
		t.Error("snapshot of a game without board should be invalid")
	}
	if (Snapshot{}).GlyphAt(0, 0).Kind != GlyphHidden {
		t.Error("GlyphAt on empty snapshot")
	}
}
