package input

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Board actions
	ActionReveal
	ActionFlag

	// Game lifecycle
	ActionRestart
	ActionReplay
	ActionBeginner
	ActionIntermediate
	ActionExpert

	// Meta / UI
	ActionOpenMenu
	ActionConfirm
	ActionQuit
	ActionScreenshot
	ActionDumpBoard
	ActionZoomIn
	ActionZoomOut
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Pointer devices target a specific cell; keyboard intents act on the cursor.
type Intent struct {
	Action   Action
	Row      int
	Col      int
	Targeted bool
}

// At returns a copy of the intent aimed at the given cell.
func (i Intent) At(row, col int) Intent {
	i.Row, i.Col, i.Targeted = row, col, true
	return i
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "f", "arrow_up", "mouse_left").
// Pointer events carry the board cell under the pointer when there is one.
type RawInput struct {
	Device    Device
	Code      string
	Row       int
	Col       int
	Targeted  bool
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device   Device
	Code     string
	Row      int
	Col      int
	Targeted bool
}

// NewDebouncedInput converts a raw event to a debounced event.
// Renderers only report press edges, so this is a thin wrapper.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device:   raw.Device,
		Code:     raw.Code,
		Row:      raw.Row,
		Col:      raw.Col,
		Targeted: raw.Targeted,
	}
}

// reserved codes can not be rebound away from their action.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"mouse_left":  true,
	"mouse_right": true,
	"face":        true,
	"enter":       true,
	// difficulty buttons
	"beginner":     true,
	"intermediate": true,
	"expert":       true,
	"ctrl_c":      true,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = defaultBindings()

func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (arrows, Vim, WASD)
		"arrow_up":    ActionMoveNorth,
		"k":           ActionMoveNorth,
		"w":           ActionMoveNorth,
		"arrow_down":  ActionMoveSouth,
		"j":           ActionMoveSouth,
		"s":           ActionMoveSouth,
		"arrow_left":  ActionMoveWest,
		"h":           ActionMoveWest,
		"a":           ActionMoveWest,
		"arrow_right": ActionMoveEast,
		"l":           ActionMoveEast,
		"d":           ActionMoveEast,

		// Board
		"space":       ActionReveal,
		"enter":       ActionConfirm,
		"mouse_left":  ActionReveal,
		"f":           ActionFlag,
		"mouse_right": ActionFlag,

		// Lifecycle
		"r":            ActionRestart,
		"face":         ActionRestart,
		"f5":           ActionReplay,
		"1":            ActionBeginner,
		"b":            ActionBeginner,
		"beginner":     ActionBeginner,
		"2":            ActionIntermediate,
		"i":            ActionIntermediate,
		"intermediate": ActionIntermediate,
		"3":            ActionExpert,
		"e":            ActionExpert,
		"expert":       ActionExpert,

		// Menu
		"m":      ActionOpenMenu,
		"f10":    ActionOpenMenu,
		"escape": ActionOpenMenu,

		// Quit
		"q":      ActionQuit,
		"ctrl_c": ActionQuit,

		// Developer tools
		"f8":  ActionDumpBoard,
		"f12": ActionScreenshot,

		// Zoom (fixed bindings)
		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	intent := Intent{Action: act}
	if ev.Targeted {
		intent = intent.At(ev.Row, ev.Col)
	}
	return intent
}

// Translate runs a raw event through every layer.
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

var actionNames = map[Action]string{
	ActionMoveNorth:    "Move North",
	ActionMoveSouth:    "Move South",
	ActionMoveWest:     "Move West",
	ActionMoveEast:     "Move East",
	ActionReveal:       "Reveal",
	ActionFlag:         "Flag",
	ActionRestart:      "Restart",
	ActionReplay:       "Replay",
	ActionBeginner:     "Beginner",
	ActionIntermediate: "Intermediate",
	ActionExpert:       "Expert",
	ActionOpenMenu:     "Open Menu",
	ActionConfirm:      "Confirm",
	ActionQuit:         "Quit",
	ActionScreenshot:   "Screenshot",
	ActionDumpBoard:    "Dump Board",
	ActionZoomIn:       "Zoom In",
	ActionZoomOut:      "Zoom Out",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ActionByName is the inverse of ActionName. Matching ignores case and spaces.
func ActionByName(name string) (Action, bool) {
	want := normalizeName(name)
	for act, n := range actionNames {
		if normalizeName(n) == want {
			return act, true
		}
	}
	return ActionNone, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "_", ""))
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all rebindable codes for the given action with a
// single code. Reserved codes are neither removed nor reassigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// BoundCodes returns every code that currently has a binding, sorted.
func BoundCodes() []string {
	codes := make([]string, 0, len(bindings))
	for c := range bindings {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// CodeFromKeyName turns a key name such as "ArrowUp", "Digit7", "F5" or "G"
// into the code used by the bindings ("arrow_up", "7", "f5", "g").
func CodeFromKeyName(name string) string {
	if rest, ok := strings.CutPrefix(name, "Digit"); ok && rest != "" {
		return rest
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsDigit(rune(name[i-1])) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
