package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

func newTestGame(t *testing.T) *state.Game {
	t.Helper()
	b, err := board.NewWithMines(3, 3, []world.Position{world.Pos(0, 0)})
	if err != nil {
		t.Fatalf("NewWithMines: %v", err)
	}
	g := state.NewGame()
	g.Board = b
	g.Difficulty = difficulty.Beginner
	g.RemainingFlags = 1
	g.Touch()
	return g
}

func newTestRenderer() (*TUIRenderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := &TUIRenderer{out: buf}
	r.Init()
	return r, buf
}

func TestFrame_HeaderAndBoard(t *testing.T) {
	r, _ := newTestRenderer()
	g := newTestGame(t)
	g.Board.Reveal(2, 2)

	frame := color.ClearCode(r.Frame(renderer.TakeSnapshot(g), 80))

	for _, want := range []string{"[1] Beginner", "001", ":)", "000"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
	if strings.Count(frame, "\r\n") < 8 {
		t.Errorf("frame does not use CRLF line endings")
	}
}

func TestFrame_LostShowsBanner(t *testing.T) {
	r, _ := newTestRenderer()
	g := newTestGame(t)
	g.Board.Reveal(0, 0)
	g.Board.RevealAllMines()
	g.Status = state.Lost

	frame := color.ClearCode(r.Frame(renderer.TakeSnapshot(g), 80))
	if !strings.Contains(frame, renderer.BannerFor(state.Lost)) {
		t.Errorf("frame missing lost banner:\n%s", frame)
	}
	if !strings.Contains(frame, renderer.IconMine) {
		t.Errorf("frame missing mine icon")
	}
	if !strings.Contains(frame, renderer.FaceLost) {
		t.Errorf("frame missing lost face")
	}
}

func TestRenderFrame_SkipsUnchangedVersion(t *testing.T) {
	r, buf := newTestRenderer()
	g := newTestGame(t)

	r.RenderFrame(g)
	if buf.Len() == 0 {
		t.Fatal("first frame not drawn")
	}
	n := buf.Len()

	r.RenderFrame(g)
	if buf.Len() != n {
		t.Error("unchanged game redrawn")
	}

	g.Touch()
	r.RenderFrame(g)
	if buf.Len() == n {
		t.Error("changed game not redrawn")
	}
}

func TestCenter(t *testing.T) {
	got := center("abcd", 10)
	if got != "   abcd" {
		t.Errorf("center = %q, want %q", got, "   abcd")
	}
	if got := center("abcdefghijk", 10); got != "abcdefghijk" {
		t.Errorf("center of wide line = %q", got)
	}
}
