package renderer

import (
	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHidden
	StyleFlag
	StyleMine
	StyleNumber
	StyleEmpty
	StyleCursor
	StyleAction
	StyleSubtle
	StyleWon
	StyleLost
	StyleTitle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, terminal, ...)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: header, board, messages
	// and the menu when one is open. Called from the game loop goroutine.
	RenderFrame(g *state.Game)

	// GetInput blocks until the player does something and returns the
	// resulting intent. Called from a dedicated input goroutine.
	GetInput() engineinput.Intent

	// StyleText applies a style to text and returns the styled string.
	// Terminal renderers apply ANSI colours; the others return text as is.
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user outside the board view
	ShowMessage(msg string)
}

// MainThreadRenderer is implemented by renderers whose event loop must own
// the calling goroutine (window systems, full-screen terminals). Run starts
// loop on another goroutine and returns when the renderer shuts down.
type MainThreadRenderer interface {
	Renderer
	Run(loop func()) error
}

// Closer is implemented by renderers holding resources past Run.
type Closer interface {
	Close() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ApplyMarkup formats a message with the current renderer's markup, or
// strips markup when no renderer is set.
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return FormatString(func(text string, _ TextStyle) string { return text }, msg, args...)
}
