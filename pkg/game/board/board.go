// Package board implements the minesweeper board: mine placement, neighbour
// counts, flood-fill reveal, flags and the win check. It has no notion of
// game status or time; callers decide what a revealed mine means.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/generator"
)

// ErrInvalidConfig is returned when a board can not be built from the given
// dimensions and mine count.
var ErrInvalidConfig = errors.New("invalid board configuration")

// Board is a rows x cols grid of cells with a fixed mine layout.
type Board struct {
	grid  world.Grid
	cells []Cell
	mines mapset.Set[world.Position]
}

// Validate checks that a board with cfg can be built.
func Validate(cfg difficulty.Config) error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.Mines <= 0 || cfg.Mines >= cfg.Cells() {
		return fmt.Errorf("%w: %d mines on %d cells", ErrInvalidConfig, cfg.Mines, cfg.Cells())
	}
	return nil
}

// New builds a board for cfg, letting gen choose the mine positions.
func New(cfg difficulty.Config, gen generator.MineGenerator, rng *rand.Rand) (*Board, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	mines := gen.Place(cfg, rng)
	if len(mines) != cfg.Mines {
		return nil, fmt.Errorf("%w: generator %s placed %d of %d mines", ErrInvalidConfig, gen.Name(), len(mines), cfg.Mines)
	}
	return NewWithMines(cfg.Rows, cfg.Cols, mines)
}

// NewWithMines builds a board with mines at exactly the given positions.
func NewWithMines(rows, cols int, mines []world.Position) (*Board, error) {
	cfg := difficulty.Config{Rows: rows, Cols: cols, Mines: len(mines)}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	b := &Board{
		grid:  world.NewGrid(rows, cols),
		cells: make([]Cell, rows*cols),
		mines: mapset.New[world.Position](),
	}

	for _, p := range mines {
		if !b.grid.Contains(p) {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d", ErrInvalidConfig, p, rows, cols)
		}
		if b.mines.Has(p) {
			return nil, fmt.Errorf("%w: duplicate mine %v", ErrInvalidConfig, p)
		}
		b.mines.Put(p)
		b.cells[b.grid.Index(p)].Value = Mine
	}

	b.countNeighbours()
	return b, nil
}

func (b *Board) countNeighbours() {
	b.grid.ForEachPosition(func(row, col int) {
		c := b.at(row, col)
		if c.IsMine() {
			return
		}
		n := 0
		b.grid.ForEachNeighbor(row, col, func(r, cc int) {
			if b.at(r, cc).IsMine() {
				n++
			}
		})
		c.Value = n
	})
}

// at returns a pointer into the cell storage; row/col must be valid.
func (b *Board) at(row, col int) *Cell {
	return &b.cells[row*b.grid.Cols()+col]
}

// Rows returns the number of rows
func (b *Board) Rows() int { return b.grid.Rows() }

// Cols returns the number of columns
func (b *Board) Cols() int { return b.grid.Cols() }

// MineCount returns the number of mines on the board
func (b *Board) MineCount() int { return b.mines.Size() }

// Config returns the board's dimensions and mine count
func (b *Board) Config() difficulty.Config {
	return difficulty.Config{Rows: b.Rows(), Cols: b.Cols(), Mines: b.MineCount()}
}

// Grid returns the board's bounds helper
func (b *Board) Grid() world.Grid { return b.grid }

// InBounds reports whether (row, col) is on the board
func (b *Board) InBounds(row, col int) bool {
	return b.grid.IsValidPosition(row, col)
}

// Cell returns a copy of the cell at (row, col). ok is false out of bounds.
func (b *Board) Cell(row, col int) (c Cell, ok bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return *b.at(row, col), true
}

// IsMine reports whether (row, col) holds a mine
func (b *Board) IsMine(row, col int) bool {
	return b.mines.Has(world.Pos(row, col))
}

// MineLocations returns the mine positions in row-major order.
func (b *Board) MineLocations() []world.Position {
	out := make([]world.Position, 0, b.mines.Size())
	b.mines.Each(func(p world.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// RevealedCount returns the number of revealed cells
func (b *Board) RevealedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsRevealed {
			n++
		}
	}
	return n
}

// FlaggedCount returns the number of flagged cells
func (b *Board) FlaggedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsFlagged {
			n++
		}
	}
	return n
}

// ForEachCell calls fn for every cell, row-major
func (b *Board) ForEachCell(fn func(row, col int, c Cell)) {
	b.grid.ForEachPosition(func(row, col int) {
		fn(row, col, *b.at(row, col))
	})
}

// String renders the mine layout for debugging: '*' for mines, '.' for
// zero and the count otherwise. Reveal and flag state is not shown.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			c := b.at(row, col)
			switch {
			case c.IsMine():
				sb.WriteByte('*')
			case c.Value == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + c.Value))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
