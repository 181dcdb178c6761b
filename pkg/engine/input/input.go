package input

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C.
var ErrInterrupted = errors.New("input: interrupted")

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// escapeCodes maps CSI/SS3 sequences (after ESC) to key codes.
var escapeCodes = map[string]string{
	"[A":   "arrow_up",
	"[B":   "arrow_down",
	"[C":   "arrow_right",
	"[D":   "arrow_left",
	"OA":   "arrow_up",
	"OB":   "arrow_down",
	"OC":   "arrow_right",
	"OD":   "arrow_left",
	"[15~": "f5",
	"[19~": "f8",
	"[21~": "f10",
	"[24~": "f12",
}

// readEscapeSequence reads the remainder of an escape sequence and returns
// the key code, or "" for sequences we don't handle.
func readEscapeSequence() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}
	if b2 == 0x1b {
		return "escape"
	}
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	seq := []byte{b2}
	for len(seq) < 6 {
		b, err := readByte()
		if err != nil {
			return ""
		}
		seq = append(seq, b)
		// Final byte of a CSI sequence is in 0x40–0x7E.
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	return escapeCodes[string(seq)]
}

// DecodeByte maps a single non-escape byte to a key code.
func DecodeByte(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b == 127 || b == 8:
		return "backspace"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b > 32 && b < 127:
		return string(rune(b))
	default:
		return ""
	}
}

// ReadKey puts the terminal into raw mode, reads one keystroke and returns
// its code ("f", "space", "arrow_up", "f5", ...). Unknown keys yield "".
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "", err
	}
	if b1 == 0x1b {
		return readEscapeSequence(), nil
	}

	code := DecodeByte(b1)
	if code == "ctrl_c" {
		return code, ErrInterrupted
	}
	return code, nil
}
