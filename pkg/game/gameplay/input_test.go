package gameplay

import (
	"context"
	"testing"
	"time"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

func TestMenu_OpenAndClose(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.ProcessIntent(intent(engineinput.ActionOpenMenu))
	if s.Game.Menu == nil {
		t.Fatal("menu not opened")
	}

	// Board actions go to the menu while it is open.
	s.ProcessIntent(click(engineinput.ActionReveal, 0, 8))
	if mustCell(t, s, 0, 8).IsRevealed {
		t.Error("click went through the open menu")
	}

	s.ProcessIntent(intent(engineinput.ActionOpenMenu))
	if s.Game.Menu != nil {
		t.Error("menu still open")
	}
}

func TestMenu_NewGameAtSelectedLevel(t *testing.T) {
	s, _ := newTestSession(t, nil, WithGenerator(generator.Uniform))
	s.ProcessIntent(intent(engineinput.ActionOpenMenu))
	// Beginner, Intermediate, Expert are the first three items.
	s.ProcessIntent(intent(engineinput.ActionMoveSouth))
	s.ProcessIntent(intent(engineinput.ActionMoveSouth))
	s.ProcessIntent(intent(engineinput.ActionConfirm))

	if s.Game.Menu != nil {
		t.Error("menu still open after activation")
	}
	if s.Game.Difficulty != difficulty.Expert {
		t.Errorf("Difficulty = %s, want expert", s.Game.Difficulty)
	}
	wantStatus(t, s.Game, state.Ready)
}

func TestMenu_Quit(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	s.ProcessIntent(intent(engineinput.ActionOpenMenu))
	// Prev wraps to the last item, Quit.
	s.ProcessIntent(intent(engineinput.ActionMoveNorth))
	s.ProcessIntent(intent(engineinput.ActionConfirm))
	if !s.Game.Quit {
		t.Error("menu quit did not quit")
	}
}

// scriptedRenderer feeds a fixed list of intents and counts frames.
type scriptedRenderer struct {
	intents chan engineinput.Intent
	frames  int
	last    renderer.Snapshot
}

func (r *scriptedRenderer) Init() error { return nil }
func (r *scriptedRenderer) Clear()      {}
func (r *scriptedRenderer) RenderFrame(g *state.Game) {
	r.frames++
	r.last = renderer.TakeSnapshot(g)
}
func (r *scriptedRenderer) GetInput() engineinput.Intent { return <-r.intents }
func (r *scriptedRenderer) StyleText(s string, _ renderer.TextStyle) string {
	return s
}
func (r *scriptedRenderer) FormatText(msg string, a ...any) string {
	return renderer.FormatString(r.StyleText, msg, a...)
}
func (r *scriptedRenderer) ShowMessage(string) {}

func TestRun_ProcessesIntentsUntilQuit(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	r := &scriptedRenderer{intents: make(chan engineinput.Intent, 4)}
	r.intents <- click(engineinput.ActionFlag, 0, 2)
	r.intents <- click(engineinput.ActionReveal, 0, 8)
	r.intents <- intent(engineinput.ActionQuit)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Run(ctx, r); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !s.Game.Quit {
		t.Error("Run returned without quitting")
	}
	if r.frames < 4 {
		t.Errorf("frames = %d, want at least 4", r.frames)
	}
	if r.last.RemainingFlags != 9 || r.last.Status != state.Playing {
		t.Errorf("last snapshot = flags %d status %s", r.last.RemainingFlags, r.last.Status)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, _ := newTestSession(t, beginnerMines)
	r := &scriptedRenderer{intents: make(chan engineinput.Intent)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx, r); err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
