package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LeftPad returns the number of columns needed to centre content of the
// given width in a terminal of termWidth columns.
func LeftPad(termWidth, width int) int {
	if width >= termWidth {
		return 0
	}
	return (termWidth - width) / 2
}

// Fits reports whether a block of width x height fits in the terminal
func Fits(width, height int) bool {
	w, h := GetSize()
	return width <= w && height <= h
}
