package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/config"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// repeatKeys are movement keys that auto-repeat while held
var repeatKeys = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
}

// pressKeys fire once per press
var pressKeys = []keyCode{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyF, "f"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyI, "i"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyF8, "f8"},
	{ebiten.KeyF10, "f10"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.quitRequested() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithField("size", [2]int{w, h}).Info("main window opened")
	}

	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.resetTileSize()
	}

	intent := e.checkMouse()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}

	switch intent.Action {
	case engineinput.ActionNone:
	case engineinput.ActionZoomIn:
		e.increaseTileSize()
	case engineinput.ActionZoomOut:
		e.decreaseTileSize()
	default:
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// checkMouse turns a click on the board, the face or a difficulty button into an intent
func (e *EbitenRenderer) checkMouse() engineinput.Intent {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	x, y := ebiten.CursorPosition()
	raw, ok := e.layout.hit(x, y, right && !left)
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	raw.Timestamp = time.Now()
	return engineinput.Translate(raw)
}

// checkInput maps the keyboard through the current bindings
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return e.translate("ctrl_c")
	}

	for _, k := range repeatKeys {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) && !ctrl }, k.code) {
			return e.translate(k.code)
		}
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return e.translate(k.code)
		}
	}
	for _, k := range e.boundKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return e.translate(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// extraBoundKeys finds the keys for bound codes that the fixed tables don't
// poll. Codes with no matching key are logged and stay unreachable here.
func (e *EbitenRenderer) extraBoundKeys() []keyCode {
	polled := map[string]bool{"ctrl_c": true}
	for _, k := range repeatKeys {
		polled[k.code] = true
	}
	for _, k := range pressKeys {
		polled[k.code] = true
	}

	byCode := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		byCode[engineinput.CodeFromKeyName(k.String())] = k
	}

	var keys []keyCode
	for _, code := range engineinput.BoundCodes() {
		if polled[code] || strings.HasPrefix(code, "mouse_") || layoutCodes[code] {
			continue
		}
		key, ok := byCode[code]
		if !ok {
			e.log.WithField("code", code).Warn("binding has no key in the window renderer")
			continue
		}
		keys = append(keys, keyCode{key: key, code: code})
	}
	return keys
}

func (e *EbitenRenderer) translate(code string) engineinput.Intent {
	return engineinput.Translate(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	})
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	pressed := isPressed()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	e.setTileSize(e.tileSize + tileSizeStep)
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	e.setTileSize(e.tileSize - tileSizeStep)
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.setTileSize(config.DefaultTileSize)
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = max(config.MinTileSize, min(size, config.MaxTileSize))
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current tile size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	if err := config.Current().SetTileSize(e.tileSize); err != nil {
		e.log.WithError(err).Warn("could not save preferences")
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
