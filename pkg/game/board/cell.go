package board

// Mine is the Value of a cell holding a mine.
const Mine = -1

// Cell is one square of the board. Value is Mine or the number of mines in
// the surrounding 8 cells (0..8).
type Cell struct {
	Value      int
	IsRevealed bool
	IsFlagged  bool
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool {
	return c.Value == Mine
}

// IsHidden reports whether the cell is still covered.
func (c Cell) IsHidden() bool {
	return !c.IsRevealed
}
