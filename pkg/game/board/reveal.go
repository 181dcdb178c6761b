package board

import (
	"github.com/zyedidia/generic/stack"

	"minesweeper/pkg/engine/world"
)

// RevealResult describes the effect of a Reveal.
type RevealResult struct {
	// HitMine is set when the target was a mine. The board is left unchanged.
	HitMine bool
	// Revealed lists every cell uncovered by this call, in reveal order.
	Revealed []world.Position
}

// Changed reports whether the reveal did anything.
func (r RevealResult) Changed() bool {
	return r.HitMine || len(r.Revealed) > 0
}

// Reveal uncovers (row, col). Out of bounds, revealed and flagged cells are
// ignored. A zero cell opens its whole zero region plus that region's border,
// stopping at flagged cells.
func (b *Board) Reveal(row, col int) RevealResult {
	if !b.InBounds(row, col) {
		return RevealResult{}
	}
	start := b.at(row, col)
	if start.IsRevealed || start.IsFlagged {
		return RevealResult{}
	}
	if start.IsMine() {
		return RevealResult{HitMine: true}
	}

	var res RevealResult
	start.IsRevealed = true
	res.Revealed = append(res.Revealed, world.Pos(row, col))
	if start.Value != 0 {
		return res
	}

	pending := stack.New[world.Position]()
	pending.Push(world.Pos(row, col))

	for pending.Size() > 0 {
		p := pending.Pop()
		b.grid.ForEachNeighbor(p.Row, p.Col, func(r, c int) {
			n := b.at(r, c)
			if n.IsRevealed || n.IsFlagged {
				return
			}
			// Zero cells never border a mine, so n is safe here.
			n.IsRevealed = true
			res.Revealed = append(res.Revealed, world.Pos(r, c))
			if n.Value == 0 {
				pending.Push(world.Pos(r, c))
			}
		})
	}

	return res
}

// ToggleFlag flips the flag on an unrevealed cell and returns the change to
// the remaining-flags counter: -1 when a flag is placed, +1 when removed.
// ok is false when the cell is out of bounds or already revealed.
func (b *Board) ToggleFlag(row, col int) (delta int, ok bool) {
	if !b.InBounds(row, col) {
		return 0, false
	}
	c := b.at(row, col)
	if c.IsRevealed {
		return 0, false
	}
	c.IsFlagged = !c.IsFlagged
	if c.IsFlagged {
		return -1, true
	}
	return 1, true
}

// RevealAllMines marks every mine as revealed. Flags and values are left
// alone.
func (b *Board) RevealAllMines() {
	b.mines.Each(func(p world.Position) {
		b.at(p.Row, p.Col).IsRevealed = true
	})
}

// CheckWinCondition reports whether every non-mine cell of b is revealed.
func CheckWinCondition(b *Board, rows, cols, mines int) bool {
	return b.RevealedCount() == rows*cols-mines
}

// IsWon is CheckWinCondition using the board's own dimensions.
func (b *Board) IsWon() bool {
	return CheckWinCondition(b, b.Rows(), b.Cols(), b.MineCount())
}
