package world

// Grid describes the bounds of a rectangular board and answers
// neighbourhood questions about it. Cell storage lives with the caller.
type Grid struct {
	rows int
	cols int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}
	return Grid{rows: rows, cols: cols}
}

// Rows returns the number of rows in the grid
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g Grid) Cols() int {
	return g.cols
}

// Size returns the number of cells in the grid
func (g Grid) Size() int {
	return g.rows * g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is IsValidPosition for a Position
func (g Grid) Contains(p Position) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// Index returns the row-major index of p. p must be inside the grid.
func (g Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionAt is the inverse of Index
func (g Grid) PositionAt(index int) Position {
	return Position{Row: index / g.cols, Col: index % g.cols}
}

// CenterPosition returns the row and column of the grid center
func (g Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// ForEachNeighbor calls fn for every in-bounds cell of the 8-neighbourhood of
// (row, col). The window is clamped at the edges, never wrapped.
func (g Grid) ForEachNeighbor(row, col int, fn func(row, col int)) {
	for _, dir := range AllDirections() {
		dr, dc := dir.Delta()
		r, c := row+dr, col+dc
		if g.IsValidPosition(r, c) {
			fn(r, c)
		}
	}
}

// Neighbors returns the in-bounds 8-neighbourhood of p
func (g Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 8)
	g.ForEachNeighbor(p.Row, p.Col, func(r, c int) {
		out = append(out, Position{Row: r, Col: c})
	})
	return out
}

// ForEachPosition iterates over all positions row-major
func (g Grid) ForEachPosition(fn func(row, col int)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col)
		}
	}
}

// Clamp moves p to the nearest position inside the grid
func (g Grid) Clamp(p Position) Position {
	p.Row = max(0, min(p.Row, g.rows-1))
	p.Col = max(0, min(p.Col, g.cols-1))
	return p
}
