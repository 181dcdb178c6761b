package gameplay

import (
	"minesweeper/pkg/game/state"
)

// HandleTick updates the elapsed time from a timer tick. Ticks from an
// older generation, or arriving when the game is not Playing, are ignored.
// It reports whether the visible time changed.
func (s *Session) HandleTick(tick Tick) bool {
	g := s.Game
	if tick.Gen != s.timer.Generation() || g.Status != state.Playing || g.StartTime.IsZero() {
		return false
	}
	elapsed := int(tick.Now.Sub(g.StartTime).Seconds())
	if elapsed < 0 || elapsed == g.ElapsedTime {
		return false
	}
	g.ElapsedTime = elapsed
	g.Touch()
	s.entry().WithField("elapsed", elapsed).Trace("tick")
	return true
}
