package generator

import (
	"math/rand"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/difficulty"
)

// MineGenerator chooses where the mines of a new board go
type MineGenerator interface {
	// Place returns cfg.Mines distinct in-bounds positions
	Place(cfg difficulty.Config, rng *rand.Rand) []world.Position
	Name() string
}

// Available generators
var (
	Uniform = &UniformGenerator{}
	Shuffle = &ShuffleGenerator{}
)

// DefaultGenerator is the default mine generator
var DefaultGenerator MineGenerator = Uniform

// ByName looks a generator up by its Name
func ByName(name string) (MineGenerator, bool) {
	for _, g := range []MineGenerator{Uniform, Shuffle} {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}
