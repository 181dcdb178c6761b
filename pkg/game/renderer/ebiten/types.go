// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for numbers on tiles
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text
	boldFontSource *text.GoTextFaceSource // Bold for titles and banners

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTitleSize    float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedTitleFace    *text.GoTextFace

	// Snapshot taken by RenderFrame on the game loop goroutine
	snapshot      renderer.Snapshot
	snapshotMutex sync.RWMutex

	// layout of the last drawn frame, used for mouse hit tests
	layout layout

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// done is closed when the window goes away
	done     chan struct{}
	doneOnce sync.Once

	// quit is set when the game loop has finished
	quit      bool
	quitMutex sync.Mutex

	// Key repeat state tracking, keyed by raw code
	keyRepeatState map[string]keyRepeatInfo
	// boundKeys are keys outside the fixed tables that a binding uses
	boundKeys []keyCode

	log *logrus.Logger

	windowOpenedLogged bool
}
