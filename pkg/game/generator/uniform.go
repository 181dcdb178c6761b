package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/difficulty"
)

// UniformGenerator draws a random cell per mine and redraws on collision.
type UniformGenerator struct{}

func (UniformGenerator) Name() string { return "uniform" }

func (UniformGenerator) Place(cfg difficulty.Config, rng *rand.Rand) []world.Position {
	taken := mapset.New[world.Position]()
	out := make([]world.Position, 0, cfg.Mines)

	for len(out) < cfg.Mines {
		p := world.Pos(rng.Intn(cfg.Rows), rng.Intn(cfg.Cols))
		if taken.Has(p) {
			continue
		}
		taken.Put(p)
		out = append(out, p)
	}
	return out
}
