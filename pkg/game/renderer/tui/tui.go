package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// Lines are terminated with CRLF because the input goroutine keeps the
// terminal in raw mode most of the time.
const eol = "\r\n"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorHidden color.Style
	colorFlag   color.Style
	colorMine   color.Style
	colorEmpty  color.Style
	colorCursor color.Style
	colorAction color.Style
	colorSubtle color.Style
	colorWon    color.Style
	colorLost   color.Style
	colorTitle  color.Style

	out         io.Writer
	lastVersion uint64
	drawn       bool
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorHidden = color.Style{color.FgGray}
	t.colorFlag = color.Style{color.FgRed, color.OpBold}
	t.colorMine = color.Style{color.FgBlack, color.BgRed, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.OpReverse}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWon = color.Style{color.FgGreen, color.OpBold}
	t.colorLost = color.Style{color.FgRed, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
	t.drawn = false
}

// GetInput reads one key from the terminal and returns a high-level Intent.
// Ctrl+C and a closed stdin both quit.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := input.ReadKey()
	if err != nil {
		if errors.Is(err, input.ErrInterrupted) || errors.Is(err, io.EOF) {
			return input.Intent{Action: input.ActionQuit}
		}
		return input.Intent{Action: input.ActionNone}
	}
	return input.Translate(input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
	})
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHidden:
		return t.colorHidden.Sprint(text)
	case renderer.StyleFlag:
		return t.colorFlag.Sprint(text)
	case renderer.StyleMine:
		return t.colorMine.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWon:
		return t.colorWon.Sprint(text)
	case renderer.StyleLost:
		return t.colorLost.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, t.FormatText("%s", msg)+eol)
}

// RenderFrame redraws the screen when the game has changed since the last frame.
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	snap := renderer.TakeSnapshot(g)
	if !snap.Valid {
		return
	}
	if t.drawn && snap.Version == t.lastVersion {
		return
	}
	t.lastVersion = snap.Version
	t.drawn = true

	width, _ := terminal.GetSize()
	fmt.Fprint(t.out, clearScreen+t.Frame(snap, width))
}

// Frame builds the full screen for snap, centred in width columns.
func (t *TUIRenderer) Frame(snap renderer.Snapshot, width int) string {
	var lines []string
	lines = append(lines, t.difficultyBar(snap.Difficulty), "")
	lines = append(lines, t.header(snap), "")

	if snap.Menu != nil {
		lines = append(lines, t.menuLines(snap.Menu)...)
	} else {
		lines = append(lines, t.boardLines(snap)...)
	}

	lines = append(lines, "")
	if snap.Banner != "" {
		style := renderer.StyleWon
		if snap.Status == state.Lost {
			style = renderer.StyleLost
		}
		lines = append(lines, t.StyleText(snap.Banner, style), "")
	}

	sb := strings.Builder{}
	for _, line := range lines {
		sb.WriteString(center(line, width))
		sb.WriteString(eol)
	}
	for _, msg := range snap.Messages {
		sb.WriteString(" " + msg + eol)
	}
	sb.WriteString(eol + t.helpLine() + eol)
	return sb.String()
}

// center pads a styled line so its visible text is centred
func center(line string, width int) string {
	visible := len([]rune(color.ClearCode(line)))
	return strings.Repeat(" ", terminal.LeftPad(width, visible)) + line
}

func (t *TUIRenderer) difficultyBar(current difficulty.Level) string {
	var parts []string
	for i, level := range difficulty.All() {
		label := fmt.Sprintf("[%d] %s", i+1, level.Label())
		if level == current {
			label = t.StyleText(label, renderer.StyleTitle)
		} else {
			label = t.StyleText(label, renderer.StyleSubtle)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (t *TUIRenderer) header(snap renderer.Snapshot) string {
	face := snap.Face
	switch snap.Status {
	case state.Won:
		face = t.StyleText(face, renderer.StyleWon)
	case state.Lost:
		face = t.StyleText(face, renderer.StyleLost)
	default:
		face = t.StyleText(face, renderer.StyleAction)
	}
	return fmt.Sprintf("%s: %03d    %s    %s: %03d",
		renderer.FlagLabel(), snap.RemainingFlags, face, renderer.TimeLabel(), snap.ElapsedTime)
}

// boardLines draws each cell two columns wide; the cursor cell is inverted.
func (t *TUIRenderer) boardLines(snap renderer.Snapshot) []string {
	lines := make([]string, 0, snap.Rows+2)
	border := t.StyleText("+"+strings.Repeat("-", snap.Cols*2+1)+"+", renderer.StyleSubtle)
	side := t.StyleText("|", renderer.StyleSubtle)

	lines = append(lines, border)
	for row := 0; row < snap.Rows; row++ {
		sb := strings.Builder{}
		sb.WriteString(side + " ")
		for col := 0; col < snap.Cols; col++ {
			sb.WriteString(t.cell(snap, row, col))
			sb.WriteString(" ")
		}
		sb.WriteString(side)
		lines = append(lines, sb.String())
	}
	lines = append(lines, border)
	return lines
}

func (t *TUIRenderer) cell(snap renderer.Snapshot, row, col int) string {
	g := snap.GlyphAt(row, col)
	text := g.Text()
	if g.Kind == renderer.GlyphHidden {
		text = "·"
	}

	if row == snap.CursorRow && col == snap.CursorCol && !snap.Status.IsTerminal() {
		return t.StyleText(text, renderer.StyleCursor)
	}
	if g.Kind == renderer.GlyphNumber {
		c := renderer.NumberColor(g.Number)
		return color.RGB(c.R, c.G, c.B).Sprint(text)
	}
	return t.StyleText(text, g.Style())
}

func (t *TUIRenderer) menuLines(m *renderer.MenuSnapshot) []string {
	lines := []string{t.StyleText(m.Title, renderer.StyleTitle), ""}
	for i, label := range m.Labels {
		switch {
		case i == m.Selected:
			lines = append(lines, t.StyleText("> "+label+" <", renderer.StyleAction))
		case !m.Selectable[i]:
			lines = append(lines, t.StyleText(label, renderer.StyleSubtle))
		default:
			lines = append(lines, label)
		}
	}
	if m.HelpText != "" {
		lines = append(lines, "", t.StyleText(m.HelpText, renderer.StyleSubtle))
	}
	return lines
}

func (t *TUIRenderer) helpLine() string {
	return t.FormatText("SUBTLE{%s} ACTION{%s}  SUBTLE{%s} ACTION{%s}  SUBTLE{%s} ACTION{%s}  SUBTLE{%s} ACTION{%s}  SUBTLE{%s} ACTION{%s}",
		gotext.Get("move"), "hjkl",
		gotext.Get("reveal"), "space",
		gotext.Get("flag"), "f",
		gotext.Get("restart"), "r",
		gotext.Get("menu"), "m")
}
