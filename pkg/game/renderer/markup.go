package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// markup functions look like ACTION{Restart} or GT{Game over}.
var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// markupStyles maps markup function names to text styles.
var markupStyles = map[string]TextStyle{
	"ACTION": StyleAction,
	"FLAG":   StyleFlag,
	"MINE":   StyleMine,
	"WON":    StyleWon,
	"LOST":   StyleLost,
	"SUBTLE": StyleSubtle,
	"TITLE":  StyleTitle,
}

// FormatString expands markup in msg after applying args. GT{...} is
// translated, the other functions are styled with style. Unknown functions
// are left as they are.
func FormatString(style func(string, TextStyle) string, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(m string) string {
		match := regexpStringFunctions.FindStringSubmatch(m)
		function, operand := match[1], match[2]

		if function == "GT" {
			return gotext.Get(operand)
		}
		if s, ok := markupStyles[function]; ok {
			return style(operand, s)
		}
		return m
	})
}

// StripMarkup removes markup functions, keeping their operands.
func StripMarkup(msg string) string {
	return FormatString(func(text string, _ TextStyle) string { return text }, msg)
}
