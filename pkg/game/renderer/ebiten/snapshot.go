package ebiten

import (
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// RenderFrame captures the game for the next Draw. Ebiten draws on its own
// goroutine, so it never reads live game state.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := renderer.TakeSnapshot(g)
	if !snap.Valid {
		return
	}

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// currentSnapshot returns the last captured frame
func (e *EbitenRenderer) currentSnapshot() renderer.Snapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
