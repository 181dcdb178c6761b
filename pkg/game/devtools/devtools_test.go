package devtools

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/state"
)

func dumpGame(t *testing.T) *state.Game {
	t.Helper()
	b, err := board.NewWithMines(3, 3, []world.Position{world.Pos(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	g := state.NewGame()
	g.Board = b
	g.Seed = 99
	g.RemainingFlags = 1
	g.CursorRow, g.CursorCol = 1, 1
	return g
}

func TestWriteBoardDump(t *testing.T) {
	g := dumpGame(t)
	g.Board.Reveal(2, 2)
	g.Board.ToggleFlag(0, 0)

	var buf bytes.Buffer
	if err := WriteBoardDump(&buf, g); err != nil {
		t.Fatalf("WriteBoardDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"seed: 99",
		"status: ready",
		"revealed: 8/8",
		"--- Player view ---\nF1.\n1@.\n...\n",
		"--- Layout ---\n*1.\n11.\n...\n",
		"row: 0 col: 0 flagged: true revealed: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBoardDump_NoBoard(t *testing.T) {
	if err := WriteBoardDump(&bytes.Buffer{}, state.NewGame()); !errors.Is(err, ErrNoBoard) {
		t.Errorf("err = %v, want ErrNoBoard", err)
	}
}

func TestDumpBoardToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpBoardToFile(dumpGame(t), dir)
	if err != nil {
		t.Fatalf("DumpBoardToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "=== BOARD DUMP ===") {
		t.Errorf("dump starts with %q", string(data[:20]))
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	g := dumpGame(t)
	g.Status = state.Lost
	g.Board.RevealAllMines()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := SaveScreenshotHTML(g, t.TempDir(), now)
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	if !strings.HasSuffix(path, "screenshot-20260102-030405.html") {
		t.Errorf("path = %q", path)
	}
	data, _ := os.ReadFile(path)
	html := string(data)
	if strings.Count(html, "<tr>") != 3 {
		t.Errorf("want 3 rows, got %d", strings.Count(html, "<tr>"))
	}
	if !strings.Contains(html, `class="mine"`) {
		t.Error("lost board should show the mine")
	}
	if strings.Contains(html, ` cursor"`) {
		t.Error("cursor drawn after game over")
	}
}
