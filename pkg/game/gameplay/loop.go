package gameplay

import (
	"context"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/renderer"
)

// Run drives the session with r until the player quits or ctx is done.
// Input is read on its own goroutine; every state change happens here.
func (s *Session) Run(ctx context.Context, r renderer.Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	intents := make(chan engineinput.Intent)
	go func() {
		for {
			intent := r.GetInput()
			select {
			case intents <- intent:
			case <-ctx.Done():
				return
			}
		}
	}()

	g := s.Game
	r.RenderFrame(g)

	for {
		select {
		case <-ctx.Done():
			s.timer.Stop()
			return ctx.Err()

		case intent := <-intents:
			s.ProcessIntent(intent)

		case tick := <-s.timer.Ticks():
			if !s.HandleTick(tick) {
				continue
			}
		}

		r.RenderFrame(g)
		if g.Quit {
			return nil
		}
	}
}
