package generator

import (
	"math/rand"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/difficulty"
)

// ShuffleGenerator shuffles every cell index and takes the first Mines.
// It runs in constant time per board regardless of density.
type ShuffleGenerator struct{}

func (ShuffleGenerator) Name() string { return "shuffle" }

func (ShuffleGenerator) Place(cfg difficulty.Config, rng *rand.Rand) []world.Position {
	grid := world.NewGrid(cfg.Rows, cfg.Cols)
	idx := make([]int, grid.Size())
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	out := make([]world.Position, cfg.Mines)
	for i := range out {
		out[i] = grid.PositionAt(idx[i])
	}
	return out
}
