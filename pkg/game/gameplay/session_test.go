// Package gameplay tests the game state machine, timer handling and intent routing.
package gameplay

import (
	"testing"
	"time"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

func TestNewGame_InitialState(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	g := s.Game

	wantStatus(t, g, state.Ready)
	if g.RemainingFlags != 10 {
		t.Errorf("RemainingFlags = %d, want 10", g.RemainingFlags)
	}
	if !g.StartTime.IsZero() || g.ElapsedTime != 0 {
		t.Errorf("timer state = %v / %d, want zero", g.StartTime, g.ElapsedTime)
	}
	if g.Board.Rows() != 9 || g.Board.Cols() != 9 || g.Board.MineCount() != 10 {
		t.Errorf("board = %v", g.Board.Config())
	}
	if g.CursorRow != 4 || g.CursorCol != 4 {
		t.Errorf("cursor = %d,%d, want 4,4", g.CursorRow, g.CursorCol)
	}
	if s.timer.Running() {
		t.Error("timer running before first move")
	}
}

func TestBeginnerScenario(t *testing.T) {
	s, clock := newTestSession(t, beginnerMines)
	g := s.Game

	s.FlagAt(0, 2)
	wantStatus(t, g, state.Playing)
	if g.RemainingFlags != 9 {
		t.Errorf("RemainingFlags = %d, want 9", g.RemainingFlags)
	}
	if got := renderer.CellGlyph(mustCell(t, s, 0, 2), false); got.Kind != renderer.GlyphFlag {
		t.Errorf("flagged cell glyph = %+v, want flag", got)
	}
	if !g.StartTime.Equal(clock.Now()) {
		t.Errorf("StartTime = %v, want %v", g.StartTime, clock.Now())
	}
	if !s.timer.Running() {
		t.Error("timer not running after first flag")
	}

	clock.Advance(42 * time.Second)
	revealAllSafe(s)

	wantStatus(t, g, state.Won)
	if got := g.Board.RevealedCount(); got != 71 {
		t.Errorf("RevealedCount = %d, want 71", got)
	}
	if g.ElapsedTime != 42 {
		t.Errorf("ElapsedTime = %d, want 42", g.ElapsedTime)
	}
	if s.timer.Running() {
		t.Error("timer still running after win")
	}
	if renderer.FaceFor(g.Status) != renderer.FaceWon {
		t.Errorf("face = %q", renderer.FaceFor(g.Status))
	}
}

func mustCell(t *testing.T, s *Session, row, col int) board.Cell {
	t.Helper()
	c, ok := s.Game.Board.Cell(row, col)
	if !ok {
		t.Fatalf("Cell(%d,%d) out of bounds", row, col)
	}
	return c
}

func TestReveal_FirstRevealStartsGame(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.RevealAt(0, 8)
	wantStatus(t, s.Game, state.Playing)
	if got := s.Game.Board.RevealedCount(); got != 67 {
		t.Errorf("flood fill revealed %d cells, want 67", got)
	}
	if mustCell(t, s, 0, 0).IsRevealed {
		t.Error("flood fill crossed the mine wall")
	}
}

func TestReveal_MineLoses(t *testing.T) {
	sounds := &recordingPlayer{}
	s, clock := newTestSession(t, beginnerMines, WithSounds(sounds))
	g := s.Game

	s.RevealAt(0, 8)
	clock.Advance(3 * time.Second)
	s.FlagAt(1, 2)
	s.RevealAt(0, 2)

	wantStatus(t, g, state.Lost)
	if s.timer.Running() {
		t.Error("timer still running after loss")
	}
	if g.ElapsedTime != 3 {
		t.Errorf("ElapsedTime = %d, want 3", g.ElapsedTime)
	}
	for _, p := range g.Board.MineLocations() {
		c := mustCell(t, s, p.Row, p.Col)
		if !c.IsRevealed {
			t.Errorf("mine %v not revealed after loss", p)
		}
	}
	if !mustCell(t, s, 1, 2).IsFlagged {
		t.Error("loss cleared a flag")
	}
	if sounds.count(audio.SoundExplode) != 1 {
		t.Errorf("explode played %d times", sounds.count(audio.SoundExplode))
	}
}

func TestReveal_MineOnFirstClick(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.RevealAt(0, 2)
	wantStatus(t, s.Game, state.Lost)
	if s.Game.StartTime.IsZero() {
		t.Error("StartTime not recorded on losing first click")
	}
}

func TestTerminalStatesIgnoreBoardActions(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	g := s.Game
	s.RevealAt(0, 2)
	wantStatus(t, g, state.Lost)

	revealed := g.Board.RevealedCount()
	flags := g.RemainingFlags
	version := g.Version

	s.RevealAt(0, 8)
	s.FlagAt(5, 5)
	s.ProcessIntent(click(engineinput.ActionReveal, 7, 7))

	wantStatus(t, g, state.Lost)
	if g.Board.RevealedCount() != revealed || g.RemainingFlags != flags {
		t.Errorf("board changed after loss: revealed %d->%d flags %d->%d",
			revealed, g.Board.RevealedCount(), flags, g.RemainingFlags)
	}
	if g.Version != version+1 {
		// only the cursor move from the targeted click
		t.Errorf("Version = %d, want %d", g.Version, version+1)
	}
}

func TestGuardsAreNoOps(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	g := s.Game
	version := g.Version

	s.RevealAt(-1, 3)
	s.RevealAt(3, 9)
	s.FlagAt(9, 9)
	wantStatus(t, g, state.Ready)
	if g.Version != version {
		t.Errorf("out of bounds actions bumped Version")
	}

	s.FlagAt(0, 8)
	s.RevealAt(0, 8)
	if mustCell(t, s, 0, 8).IsRevealed {
		t.Error("flagged cell revealed")
	}

	s.FlagAt(0, 8)
	s.RevealAt(0, 8)
	flags := g.RemainingFlags
	s.FlagAt(0, 8)
	if g.RemainingFlags != flags {
		t.Error("flag toggled on a revealed cell")
	}
}

func TestRevealFlaggedCellDoesNotStartGame(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	g := s.Game
	g.Board.ToggleFlag(4, 4)

	s.RevealAt(4, 4)
	wantStatus(t, g, state.Ready)
}

func TestFlagCounterMayGoNegative(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	n := 0
	s.Game.Board.Grid().ForEachPosition(func(row, col int) {
		if n < 12 {
			s.FlagAt(row, col)
			n++
		}
	})
	if s.Game.RemainingFlags != -2 {
		t.Errorf("RemainingFlags = %d, want -2", s.Game.RemainingFlags)
	}
	wantStatus(t, s.Game, state.Playing)
}

func TestFlagTwiceRestoresCounter(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.FlagAt(3, 3)
	s.FlagAt(3, 3)
	if s.Game.RemainingFlags != 10 || mustCell(t, s, 3, 3).IsFlagged {
		t.Errorf("after double flag: counter %d flagged %v", s.Game.RemainingFlags, mustCell(t, s, 3, 3).IsFlagged)
	}
	wantStatus(t, s.Game, state.Playing)
}

func TestRestart_ResetsEverything(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	g := s.Game
	s.FlagAt(1, 1)
	s.RevealAt(0, 2)
	oldID := g.ID

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	wantStatus(t, g, state.Ready)
	if g.RemainingFlags != 10 || g.ElapsedTime != 0 || !g.StartTime.IsZero() {
		t.Errorf("restart left state: flags %d elapsed %d start %v", g.RemainingFlags, g.ElapsedTime, g.StartTime)
	}
	if g.Board.RevealedCount() != 0 || g.Board.FlaggedCount() != 0 {
		t.Error("restart kept revealed or flagged cells")
	}
	if g.ID == oldID {
		t.Error("restart kept the game ID")
	}
}

func TestChangeDifficulty(t *testing.T) {
	s, _ := newTestSession(t, nil, WithGenerator(generator.Uniform))
	g := s.Game
	s.RevealAt(4, 4)
	id := g.ID

	if err := s.ChangeDifficulty(difficulty.Beginner); err != nil {
		t.Fatal(err)
	}
	if g.ID != id {
		t.Error("choosing the current difficulty started a new game")
	}

	if err := s.ChangeDifficulty(difficulty.Expert); err != nil {
		t.Fatal(err)
	}
	wantStatus(t, g, state.Ready)
	if g.Difficulty != difficulty.Expert || g.Board.Cols() != 30 || g.RemainingFlags != 99 {
		t.Errorf("expert game = %s %v flags %d", g.Difficulty, g.Board.Config(), g.RemainingFlags)
	}
}

func TestReplay_SameLayout(t *testing.T) {
	seeds := []int64{11, 22}
	next := 0
	s, _ := newTestSession(t, nil,
		WithGenerator(generator.Uniform),
		WithSeedSource(func() int64 { v := seeds[next%len(seeds)]; next++; return v }),
	)
	first := s.Game.Board.MineLocations()

	s.RevealAt(4, 4)
	if err := s.Replay(); err != nil {
		t.Fatal(err)
	}
	again := s.Game.Board.MineLocations()
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("replay layout differs at %d: %v vs %v", i, first[i], again[i])
		}
	}
	wantStatus(t, s.Game, state.Ready)
}

func TestNewGameHook(t *testing.T) {
	var got []difficulty.Level
	s, _ := newTestSession(t, nil,
		WithGenerator(generator.Uniform),
		WithNewGameHook(func(l difficulty.Level) { got = append(got, l) }),
	)
	s.ProcessIntent(intent(engineinput.ActionIntermediate))
	if len(got) != 2 || got[1] != difficulty.Intermediate {
		t.Errorf("hook calls = %v", got)
	}
}

func TestMoveCursor_ClampsAtEdges(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	for i := 0; i < 20; i++ {
		s.ProcessIntent(intent(engineinput.ActionMoveNorth))
		s.ProcessIntent(intent(engineinput.ActionMoveWest))
	}
	if s.Game.CursorRow != 0 || s.Game.CursorCol != 0 {
		t.Errorf("cursor = %d,%d, want 0,0", s.Game.CursorRow, s.Game.CursorCol)
	}
	s.ProcessIntent(intent(engineinput.ActionMoveEast))
	s.ProcessIntent(intent(engineinput.ActionMoveSouth))
	if s.Game.CursorRow != 1 || s.Game.CursorCol != 1 {
		t.Errorf("cursor = %d,%d, want 1,1", s.Game.CursorRow, s.Game.CursorCol)
	}
}

func TestKeyboardRevealUsesCursor(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.SetCursor(0, 8)
	s.ProcessIntent(intent(engineinput.ActionReveal))
	if !mustCell(t, s, 0, 8).IsRevealed {
		t.Error("reveal at cursor did nothing")
	}
	s.SetCursor(0, 0)
	s.ProcessIntent(intent(engineinput.ActionFlag))
	if !mustCell(t, s, 0, 0).IsFlagged {
		t.Error("flag at cursor did nothing")
	}
}

func TestTargetedIntentMovesCursor(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.ProcessIntent(click(engineinput.ActionFlag, 6, 2))
	if s.Game.CursorRow != 6 || s.Game.CursorCol != 2 || !mustCell(t, s, 6, 2).IsFlagged {
		t.Errorf("targeted flag: cursor %d,%d", s.Game.CursorRow, s.Game.CursorCol)
	}
}

func TestQuit(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.RevealAt(0, 8)
	s.ProcessIntent(intent(engineinput.ActionQuit))
	if !s.Game.Quit {
		t.Error("Quit not set")
	}
	if s.timer.Running() {
		t.Error("timer running after quit")
	}
}

func TestDevtoolsIntents(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.ProcessIntent(intent(engineinput.ActionDumpBoard))
	s.ProcessIntent(intent(engineinput.ActionScreenshot))
	if n := len(s.Game.Messages); n != 3 {
		t.Errorf("messages = %v, want new game + 2 saves", s.Game.Messages)
	}
}
