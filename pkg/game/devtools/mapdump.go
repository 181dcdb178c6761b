// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// ErrNoBoard is returned when a dump is requested before a board exists.
var ErrNoBoard = errors.New("no board")

// cellSymbol returns the single-character symbol for a cell as the player sees it.
func cellSymbol(c board.Cell, gameOver bool) rune {
	g := renderer.CellGlyph(c, gameOver)
	switch g.Kind {
	case renderer.GlyphFlag:
		return 'F'
	case renderer.GlyphMine:
		return '*'
	case renderer.GlyphNumber:
		return rune('0' + g.Number)
	case renderer.GlyphEmpty:
		return '.'
	default:
		return '#'
	}
}

// writePlayerView writes the board as the player sees it, cursor marked with @.
func writePlayerView(w io.Writer, g *state.Game) {
	gameOver := g.IsGameOver()
	b := g.Board
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if row == g.CursorRow && col == g.CursorCol && !gameOver {
				fmt.Fprint(w, "@")
				continue
			}
			c, _ := b.Cell(row, col)
			fmt.Fprintf(w, "%c", cellSymbol(c, gameOver))
		}
		fmt.Fprintln(w)
	}
}

// WriteBoardDump writes a full debug dump of g: metadata, legend, the
// player's view and the full layout.
func WriteBoardDump(w io.Writer, g *state.Game) error {
	if g == nil || g.Board == nil {
		return ErrNoBoard
	}
	b := g.Board

	// --- Metadata ---
	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "game_id: %s\n", g.ID)
	fmt.Fprintf(w, "difficulty: %s\n", g.Difficulty)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "status: %s\n", g.Status)
	fmt.Fprintf(w, "rows: %d\n", b.Rows())
	fmt.Fprintf(w, "cols: %d\n", b.Cols())
	fmt.Fprintf(w, "mines: %d\n", b.MineCount())
	fmt.Fprintf(w, "remaining_flags: %d\n", g.RemainingFlags)
	fmt.Fprintf(w, "elapsed_seconds: %d\n", g.ElapsedTime)
	fmt.Fprintf(w, "revealed: %d/%d\n", b.RevealedCount(), b.Rows()*b.Cols()-b.MineCount())
	fmt.Fprintf(w, "cursor: %d,%d\n", g.CursorRow, g.CursorCol)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based)\n")
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = hidden  F = flag  * = mine  . = empty  1-8 = adjacent mines  @ = cursor")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Player view ---")
	writePlayerView(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Layout ---")
	fmt.Fprint(w, b.String())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Mines ---")
	for _, p := range b.MineLocations() {
		c, _ := b.Cell(p.Row, p.Col)
		fmt.Fprintf(w, "  row: %d col: %d flagged: %v revealed: %v\n", p.Row, p.Col, c.IsFlagged, c.IsRevealed)
	}
	return nil
}

// DumpBoardToFile writes the board dump to board.txt in dir ("" for the
// working directory) and returns the absolute path.
func DumpBoardToFile(g *state.Game, dir string) (string, error) {
	if g == nil || g.Board == nil {
		return "", ErrNoBoard
	}

	absPath, err := filepath.Abs(filepath.Join(dir, boardDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteBoardDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
