package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/renderer"
)

// New creates a new Ebiten renderer with the given tile size.
func New(tileSize int, log *logrus.Logger) *EbitenRenderer {
	if log == nil {
		log = logging.Discard()
	}
	return &EbitenRenderer{
		windowWidth:    800,
		windowHeight:   720,
		tileSize:       tileSize,
		inputChan:      make(chan engineinput.Intent, 16),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
		log:            log,
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Minesweeper"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.boundKeys = e.extraBoundKeys()
	return nil
}

// Clear is a no-op; Ebiten redraws every frame.
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until Update produces an intent. Once the window is gone
// it returns ActionQuit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; colours come from markup when drawing.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText keeps style markup in place so draw calls can colour it, and
// translates GT{} functions.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(func(text string, style renderer.TextStyle) string {
		if name, ok := styleMarkup[style]; ok {
			return name + "{" + text + "}"
		}
		return text
	}, msg, args...)
}

// ShowMessage logs the message; the frame shows the game's own message log.
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.log.Info(renderer.StripMarkup(msg))
}

// Run starts loop on its own goroutine and runs the Ebiten game on the
// calling goroutine, which must be the main one. It returns once both the
// window and loop have finished; closing the window makes GetInput report
// ActionQuit so the loop can end.
func (e *EbitenRenderer) Run(loop func()) error {
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		loop()
		e.requestQuit()
	}()

	err := ebiten.RunGame(e)
	e.closeDone()
	<-loopDone
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// requestQuit makes the next Update end the Ebiten loop
func (e *EbitenRenderer) requestQuit() {
	e.quitMutex.Lock()
	e.quit = true
	e.quitMutex.Unlock()
}

func (e *EbitenRenderer) quitRequested() bool {
	e.quitMutex.Lock()
	defer e.quitMutex.Unlock()
	return e.quit
}

func (e *EbitenRenderer) closeDone() {
	e.doneOnce.Do(func() { close(e.done) })
}
