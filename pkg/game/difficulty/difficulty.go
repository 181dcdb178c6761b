// Package difficulty defines the fixed table of board presets. The table is
// immutable; callers receive copies.
package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Level identifies a board preset.
type Level int

const (
	Beginner Level = iota
	Intermediate
	Expert
)

// levelCount is the number of presets (for iteration and bounds checks).
const levelCount = 3

// Default is the preset a new game starts with.
const Default = Beginner

// ErrUnknown is returned by Parse for names that are not in the table.
var ErrUnknown = errors.New("unknown difficulty")

// Config holds the dimensions and mine count of a board.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// Cells returns rows*cols.
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// SafeCells returns the number of cells that must be revealed to win.
func (c Config) SafeCells() int {
	return c.Cells() - c.Mines
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d/%d", c.Rows, c.Cols, c.Mines)
}

var table = [levelCount]struct {
	name string
	cfg  Config
}{
	Beginner:     {"beginner", Config{Rows: 9, Cols: 9, Mines: 10}},
	Intermediate: {"intermediate", Config{Rows: 16, Cols: 16, Mines: 40}},
	Expert:       {"expert", Config{Rows: 16, Cols: 30, Mines: 99}},
}

// IsValid reports whether l is a level in the table.
func (l Level) IsValid() bool {
	return l >= Beginner && l < levelCount
}

// Config returns the preset for l. Unknown levels fall back to Default.
func (l Level) Config() Config {
	if !l.IsValid() {
		l = Default
	}
	return table[l].cfg
}

// String returns the stable, untranslated name of the level.
func (l Level) String() string {
	if !l.IsValid() {
		return "unknown"
	}
	return table[l].name
}

// Label returns the translated display name of the level.
func (l Level) Label() string {
	switch l {
	case Intermediate:
		return gotext.Get("Intermediate")
	case Expert:
		return gotext.Get("Expert")
	default:
		return gotext.Get("Beginner")
	}
}

// All returns every level in table order.
func All() []Level {
	levels := make([]Level, levelCount)
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

// Parse resolves a level by name. Matching is case-insensitive.
func Parse(name string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, l := range All() {
		if table[l].name == want {
			return l, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknown, name)
}
