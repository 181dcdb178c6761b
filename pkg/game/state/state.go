package state

import (
	"time"

	"github.com/google/uuid"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/menu"
)

// Status is the lifecycle stage of one game
type Status int

// Game statuses. Won and Lost are terminal until the next new game.
const (
	Ready Status = iota
	Playing
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether s is Won or Lost
func (s Status) IsTerminal() bool {
	return s == Won || s == Lost
}

// Game represents the state of the current minesweeper game
type Game struct {
	ID         uuid.UUID
	Board      *board.Board
	Difficulty difficulty.Level
	Status     Status

	// RemainingFlags starts at the mine count and may go negative.
	RemainingFlags int

	// StartTime is zero until the first reveal or flag.
	StartTime   time.Time
	ElapsedTime int // whole seconds

	// Seed reproduces the mine layout of Board.
	Seed int64

	CursorRow int
	CursorCol int

	Messages []string

	// Menu is non-nil while the in-game menu is open.
	Menu *menu.Menu

	// Version increases on every change a renderer could show.
	Version uint64

	Quit bool
}

// NewGame creates an empty game; gameplay fills in the board.
func NewGame() *Game {
	return &Game{
		Difficulty: difficulty.Default,
		Messages:   make([]string, 0),
	}
}

// Touch marks the game as changed
func (g *Game) Touch() {
	g.Version++
}

// IsGameOver reports whether the game has been won or lost
func (g *Game) IsGameOver() bool {
	return g.Status.IsTerminal()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
	g.Touch()
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
	g.Touch()
}
