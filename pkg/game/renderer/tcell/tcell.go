// Package tcell provides a full-screen terminal renderer with mouse support.
package tcell

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Renderer draws the game on a tcell screen. RenderFrame runs on the game
// loop goroutine and GetInput on the input goroutine; the layout they share
// is guarded by mu.
type Renderer struct {
	screen tcell.Screen

	mu          sync.Mutex
	layout      layout
	lastVersion uint64
	drawn       bool
	forceRedraw bool
	mouseDown   tcell.ButtonMask
}

// New creates a renderer on screen. A nil screen means the real terminal,
// opened in Init.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Init opens the screen and enables the mouse
func (r *Renderer) Init() error {
	if r.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		r.screen = screen
	}
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.SetStyle(tcell.StyleDefault)
	r.screen.EnableMouse()
	r.screen.HideCursor()
	return nil
}

// Close restores the terminal
func (r *Renderer) Close() error {
	if r.screen != nil {
		r.screen.Fini()
	}
	return nil
}

// Clear clears the screen
func (r *Renderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

// StyleText returns text unchanged; tcell styles are applied per cell.
func (r *Renderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// FormatText expands markup without styling
func (r *Renderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(r.StyleText, msg, args...)
}

// ShowMessage is a no-op; messages are part of the frame.
func (r *Renderer) ShowMessage(string) {}

// GetInput blocks until a key press or mouse click maps to an intent.
// Resizes return ActionNone so the loop redraws.
func (r *Renderer) GetInput() input.Intent {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// Screen finalised.
			return input.Intent{Action: input.ActionQuit}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			code := keyCode(ev)
			if code == "" {
				continue
			}
			return input.Translate(input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: ev.When()})

		case *tcell.EventMouse:
			raw, ok := r.mousePress(ev)
			if !ok {
				continue
			}
			return input.Translate(raw)

		case *tcell.EventResize:
			r.screen.Sync()
			r.mu.Lock()
			r.forceRedraw = true
			r.mu.Unlock()
			return input.Intent{Action: input.ActionNone}
		}
	}
}

// mousePress reports press edges only, so holding a button fires once.
func (r *Renderer) mousePress(ev *tcell.EventMouse) (input.RawInput, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	pressed := buttons &^ r.mouseDown
	r.mouseDown = buttons
	if pressed == 0 {
		return input.RawInput{}, false
	}

	x, y := ev.Position()
	raw, ok := r.layout.hit(x, y, pressed&tcell.Button2 != 0)
	raw.Timestamp = ev.When()
	return raw, ok
}

// keyCode maps a tcell key event to the raw codes used by the bindings.
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyF5:
		return "f5"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyF10:
		return "f10"
	case tcell.KeyF12:
		return "f12"
	case tcell.KeyRune:
		ch := ev.Rune()
		if ch == ' ' {
			return "space"
		}
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		return string(ch)
	}
	return ""
}

// RenderFrame draws the game when it changed or the terminal was resized.
func (r *Renderer) RenderFrame(g *state.Game) {
	snap := renderer.TakeSnapshot(g)
	if !snap.Valid {
		return
	}

	r.mu.Lock()
	if r.drawn && !r.forceRedraw && snap.Version == r.lastVersion {
		r.mu.Unlock()
		return
	}
	width, _ := r.screen.Size()
	l := computeLayout(snap, width)
	r.layout = l
	r.lastVersion = snap.Version
	r.drawn = true
	r.forceRedraw = false
	r.mu.Unlock()

	r.screen.Clear()
	r.draw(snap, l, width)
	r.screen.Show()
}

var (
	styleDefault = tcell.StyleDefault
	styleSubtle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal).Bold(true)
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)
	styleFlag    = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorGray).Bold(true)
	styleMine    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
	styleWon     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func (r *Renderer) draw(snap renderer.Snapshot, l layout, width int) {
	for _, b := range l.buttons {
		style := styleButton
		if b.code == snap.Difficulty.String() {
			style = styleActive
		}
		r.drawText(b.x, b.y, b.label, style)
	}

	faceStyle := styleTitle
	switch snap.Status {
	case state.Won:
		faceStyle = styleWon
	case state.Lost:
		faceStyle = styleLost
	}
	flags := fmt.Sprintf("%s %03d", renderer.FlagLabel(), snap.RemainingFlags)
	clock := fmt.Sprintf("%s %03d", renderer.TimeLabel(), snap.ElapsedTime)
	r.drawText(l.board.x, l.face.y, flags, styleDefault)
	r.drawText(l.face.x, l.face.y, l.face.label, faceStyle)
	r.drawText(l.board.x+l.board.w-len([]rune(clock)), l.face.y, clock, styleDefault)

	r.drawFrame(l.board)
	if snap.Menu != nil {
		r.drawMenu(snap.Menu, l.board)
	} else {
		for row := 0; row < snap.Rows; row++ {
			for col := 0; col < snap.Cols; col++ {
				r.drawCell(snap, l, row, col)
			}
		}
	}

	y := l.board.y + l.board.h + 2
	if snap.Banner != "" {
		style := styleWon
		if snap.Status == state.Lost {
			style = styleLost
		}
		r.drawText(max((width-len([]rune(snap.Banner)))/2, 0), y, snap.Banner, style)
		y += 2
	}
	for _, msg := range snap.Messages {
		r.drawText(l.board.x, y, renderer.StripMarkup(msg), styleSubtle)
		y++
	}
	help := gotext.Get("click: reveal  right click: flag  r: restart  m: menu  q: quit")
	r.drawText(l.board.x, y+1, help, styleSubtle)
}

func (r *Renderer) drawCell(snap renderer.Snapshot, l layout, row, col int) {
	g := snap.GlyphAt(row, col)
	x, y := l.board.x+col*cellWidth, l.board.y+row

	var style tcell.Style
	switch g.Kind {
	case renderer.GlyphHidden:
		style = styleHidden
	case renderer.GlyphFlag:
		style = styleFlag
	case renderer.GlyphMine:
		style = styleMine
	case renderer.GlyphNumber:
		c := renderer.NumberColor(g.Number)
		style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Bold(true)
	default:
		style = styleDefault
	}
	if row == snap.CursorRow && col == snap.CursorCol && !snap.Status.IsTerminal() {
		style = style.Reverse(true)
	}

	ch := []rune(g.Text())[0]
	r.screen.SetContent(x, y, ch, nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

// drawFrame draws a border one cell outside area
func (r *Renderer) drawFrame(area rect) {
	left, right := area.x-1, area.x+area.w
	top, bottom := area.y-1, area.y+area.h
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, styleSubtle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleSubtle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, styleSubtle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleSubtle)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, styleSubtle)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, styleSubtle)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, styleSubtle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleSubtle)
}

func (r *Renderer) drawMenu(m *renderer.MenuSnapshot, area rect) {
	y := area.y
	r.drawText(area.x, y, m.Title, styleTitle)
	y += 2
	for i, label := range m.Labels {
		style := styleDefault
		prefix := "  "
		switch {
		case i == m.Selected:
			style = styleActive
			prefix = "> "
		case !m.Selectable[i]:
			style = styleSubtle
		}
		r.drawText(area.x, y, prefix+label, style)
		y++
	}
	if m.HelpText != "" {
		r.drawText(area.x, y+1, m.HelpText, styleSubtle)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
