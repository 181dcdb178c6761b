package gameplay

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/state"
)

// fixedGenerator places mines at the same positions every time, ignoring the RNG.
type fixedGenerator struct {
	mines []world.Position
}

func (f fixedGenerator) Name() string { return "fixed" }

func (f fixedGenerator) Place(difficulty.Config, *rand.Rand) []world.Position {
	return append([]world.Position(nil), f.mines...)
}

// beginnerMines is a 10-mine beginner layout. Five mines wall off the
// top-left 2x2 pocket and five fill the right half of the bottom row, so a
// reveal at (0,8) opens everything except the pocket.
var beginnerMines = []world.Position{
	world.Pos(0, 2), world.Pos(1, 2), world.Pos(2, 2), world.Pos(2, 1), world.Pos(2, 0),
	world.Pos(8, 4), world.Pos(8, 5), world.Pos(8, 6), world.Pos(8, 7), world.Pos(8, 8),
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// recordingPlayer remembers every sound played
type recordingPlayer struct {
	played []audio.Sound
}

func (p *recordingPlayer) Play(s audio.Sound) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close() error       { return nil }

func (p *recordingPlayer) count(s audio.Sound) int {
	n := 0
	for _, x := range p.played {
		if x == s {
			n++
		}
	}
	return n
}

// newTestSession creates a session on a fixed beginner board.
func newTestSession(t *testing.T, mines []world.Position, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{
		WithGenerator(fixedGenerator{mines: mines}),
		WithClock(clock.Now),
		WithTickInterval(time.Hour),
		WithDumpDir(t.TempDir()),
	}, opts...)
	s := NewSession(opts...)
	if err := s.NewGame(difficulty.Beginner); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(s.timer.Stop)
	return s, clock
}

func intent(a engineinput.Action) engineinput.Intent {
	return engineinput.Intent{Action: a}
}

func click(a engineinput.Action, row, col int) engineinput.Intent {
	return engineinput.Intent{Action: a}.At(row, col)
}

func wantStatus(t *testing.T, g *state.Game, want state.Status) {
	t.Helper()
	if g.Status != want {
		t.Fatalf("Status = %s, want %s", g.Status, want)
	}
}

// revealAllSafe reveals every non-mine cell of the board one by one.
func revealAllSafe(s *Session) {
	b := s.Game.Board
	b.Grid().ForEachPosition(func(row, col int) {
		if !b.IsMine(row, col) {
			s.RevealAt(row, col)
		}
	})
}

var _ generator.MineGenerator = fixedGenerator{}
