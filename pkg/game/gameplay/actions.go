package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/state"
)

// start moves a Ready game to Playing and starts the clock.
func (s *Session) start() {
	g := s.Game
	if g.Status != state.Ready {
		return
	}
	g.Status = state.Playing
	g.StartTime = s.now()
	g.ElapsedTime = 0
	s.timer.Start()
	s.entry().Debug("timer started")
}

// finish moves the game to a terminal status and freezes the clock.
func (s *Session) finish(status state.Status) {
	g := s.Game
	s.timer.Stop()
	g.Status = status
	if !g.StartTime.IsZero() {
		g.ElapsedTime = int(s.now().Sub(g.StartTime).Seconds())
	}
}

// RevealAt reveals (row, col). Terminal games, out-of-bounds, revealed and
// flagged cells are ignored. Hitting a mine loses the game and shows every
// mine; revealing the last safe cell wins it.
func (s *Session) RevealAt(row, col int) {
	g := s.Game
	if g.Board == nil || g.IsGameOver() {
		return
	}
	c, ok := g.Board.Cell(row, col)
	if !ok || c.IsRevealed || c.IsFlagged {
		return
	}

	s.start()

	res := g.Board.Reveal(row, col)
	if res.HitMine {
		s.finish(state.Lost)
		g.Board.RevealAllMines()
		logMessage(g, "LOST{%s}", gotext.Get("Boom! Mine at row %d, column %d.", row+1, col+1))
		s.entry().WithFields(logrus.Fields{"row": row, "col": col, "elapsed": g.ElapsedTime}).Info("game lost")
		s.sounds.Play(audio.SoundExplode)
		g.Touch()
		return
	}

	s.sounds.Play(audio.SoundReveal)
	if board.CheckWinCondition(g.Board, g.Board.Rows(), g.Board.Cols(), g.Board.MineCount()) {
		s.finish(state.Won)
		logMessage(g, "WON{%s}", gotext.Get("Cleared in %d seconds.", g.ElapsedTime))
		s.entry().WithField("elapsed", g.ElapsedTime).Info("game won")
		s.sounds.Play(audio.SoundWin)
	}
	g.Touch()
}

// FlagAt toggles the flag on (row, col). Terminal games, out-of-bounds and
// revealed cells are ignored.
func (s *Session) FlagAt(row, col int) {
	g := s.Game
	if g.Board == nil || g.IsGameOver() {
		return
	}
	c, ok := g.Board.Cell(row, col)
	if !ok || c.IsRevealed {
		return
	}

	s.start()

	delta, ok := g.Board.ToggleFlag(row, col)
	if !ok {
		return
	}
	g.RemainingFlags += delta
	s.sounds.Play(audio.SoundFlag)
	g.Touch()
}
