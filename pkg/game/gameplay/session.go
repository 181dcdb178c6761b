// Package gameplay drives a minesweeper game: it owns the game state, turns
// intents into board operations, runs the status state machine and the
// one-second timer.
package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Session owns one game and everything needed to play it. All methods must be
// called from the goroutine running the session loop.
type Session struct {
	Game *state.Game

	gen     generator.MineGenerator
	sounds  audio.Player
	log     *logrus.Logger
	now     func() time.Time
	newSeed func() int64
	timer   *Timer
	dumpDir string

	// onNewGame is called after every successful (re)initialisation.
	onNewGame func(level difficulty.Level)
}

// Option configures a Session
type Option func(*Session)

// WithGenerator sets the mine placement strategy
func WithGenerator(gen generator.MineGenerator) Option {
	return func(s *Session) { s.gen = gen }
}

// WithSounds sets the sound effect player
func WithSounds(p audio.Player) Option {
	return func(s *Session) { s.sounds = p }
}

// WithLogger sets the logger
func WithLogger(log *logrus.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithSeedSource replaces the seed of each new board
func WithSeedSource(next func() int64) Option {
	return func(s *Session) { s.newSeed = next }
}

// WithTickInterval changes the timer period (one second by default)
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.timer.interval = d }
}

// WithDumpDir sets where board dumps and screenshots go
func WithDumpDir(dir string) Option {
	return func(s *Session) { s.dumpDir = dir }
}

// WithNewGameHook registers fn to run after every new board
func WithNewGameHook(fn func(level difficulty.Level)) Option {
	return func(s *Session) { s.onNewGame = fn }
}

// NewSession creates a session with no board yet; call NewGame before use.
func NewSession(opts ...Option) *Session {
	s := &Session{
		Game:    state.NewGame(),
		gen:     generator.DefaultGenerator,
		sounds:  audio.Nop{},
		log:     logging.Discard(),
		now:     time.Now,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
	s.timer = NewTimer(time.Second, func() time.Time { return s.now() })
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timer returns the session's tick source
func (s *Session) Timer() *Timer {
	return s.timer
}

// entry returns a log entry carrying the game's identity
func (s *Session) entry() *logrus.Entry {
	g := s.Game
	return s.log.WithFields(logrus.Fields{
		"game":       g.ID.String(),
		"difficulty": g.Difficulty.String(),
		"seed":       g.Seed,
	})
}

// logMessage formats a message with the renderer's markup and adds it to the game log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}
