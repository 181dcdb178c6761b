package gameplay

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/state"
)

// Initialize replaces the board with a fresh one for level, built from seed.
// The game returns to Ready with a full flag counter and a stopped timer.
func (s *Session) Initialize(level difficulty.Level, seed int64) error {
	cfg := level.Config()
	b, err := board.New(cfg, s.gen, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	s.timer.Stop()

	g := s.Game
	g.ID = uuid.New()
	g.Board = b
	g.Difficulty = level
	g.Seed = seed
	g.Status = state.Ready
	g.RemainingFlags = cfg.Mines
	g.StartTime = time.Time{}
	g.ElapsedTime = 0
	g.CursorRow, g.CursorCol = b.Grid().CenterPosition()
	g.Menu = nil
	g.ClearMessages()
	logMessage(g, "%s", gotext.Get("New game: %s, %d mines", level.Label(), cfg.Mines))
	g.Touch()

	s.entry().WithField("board", cfg.String()).Info("new game")
	s.sounds.Play(audio.SoundNewGame)
	if s.onNewGame != nil {
		s.onNewGame(level)
	}
	return nil
}

// NewGame starts a new board at level with a fresh seed
func (s *Session) NewGame(level difficulty.Level) error {
	return s.Initialize(level, s.newSeed())
}

// Restart starts a new board at the current difficulty
func (s *Session) Restart() error {
	return s.NewGame(s.Game.Difficulty)
}

// ChangeDifficulty starts a new board at level. Choosing the difficulty
// already in play does nothing; use Restart for a new board.
func (s *Session) ChangeDifficulty(level difficulty.Level) error {
	if level == s.Game.Difficulty && s.Game.Board != nil {
		return nil
	}
	return s.NewGame(level)
}

// Replay starts over on the same mine layout
func (s *Session) Replay() error {
	return s.Initialize(s.Game.Difficulty, s.Game.Seed)
}
