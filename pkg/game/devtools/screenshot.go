package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// glyphClass returns the CSS class for a glyph
func glyphClass(g renderer.Glyph) string {
	switch g.Kind {
	case renderer.GlyphFlag:
		return "hidden flag"
	case renderer.GlyphMine:
		return "mine"
	case renderer.GlyphNumber:
		return fmt.Sprintf("open n%d", g.Number)
	case renderer.GlyphEmpty:
		return "open"
	default:
		return "hidden"
	}
}

// RenderScreenshotHTML renders the current board as a standalone HTML page
func RenderScreenshotHTML(g *state.Game) string {
	snap := renderer.TakeSnapshot(g)

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Minesweeper - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .status { color: #888; margin-bottom: 20px; }
        .board { border-collapse: collapse; background-color: #0f0f1a; }
        .board td {
            width: 24px; height: 24px;
            text-align: center; font-weight: bold;
            border: 1px solid #444;
        }
        .hidden { background-color: #9e9e9e; }
        .open { background-color: #e0e0e0; }
        .mine { background-color: #d32f2f; color: #000; }
        .flag { color: #d32f2f; }
        .cursor { outline: 2px solid #bb86fc; }
`)
	for n := 1; n <= 8; n++ {
		c := renderer.NumberColor(n)
		fmt.Fprintf(&sb, "        .n%d { color: #%02x%02x%02x; }\n", n, c.R, c.G, c.B)
	}
	sb.WriteString(`    </style>
</head>
<body>
`)

	fmt.Fprintf(&sb, "<div class=\"header\">%s</div>\n", html.EscapeString(snap.Difficulty.Label()))
	fmt.Fprintf(&sb, "<div class=\"status\">%s %s &nbsp; %s: %d &nbsp; %s: %d",
		html.EscapeString(snap.Face), html.EscapeString(snap.Banner),
		html.EscapeString(renderer.FlagLabel()), snap.RemainingFlags,
		html.EscapeString(renderer.TimeLabel()), snap.ElapsedTime)
	sb.WriteString("</div>\n<table class=\"board\">\n")

	for row := 0; row < snap.Rows; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < snap.Cols; col++ {
			glyph := snap.GlyphAt(row, col)
			class := glyphClass(glyph)
			if row == snap.CursorRow && col == snap.CursorCol && !snap.Status.IsTerminal() {
				class += " cursor"
			}
			text := strings.TrimSpace(glyph.Text())
			fmt.Fprintf(&sb, "<td class=\"%s\">%s</td>", class, html.EscapeString(text))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n</body>\n</html>\n")
	return sb.String()
}

// SaveScreenshotHTML writes the current board as screenshot-<timestamp>.html
// in dir and returns the file path.
func SaveScreenshotHTML(g *state.Game, dir string, now time.Time) (string, error) {
	if g == nil || g.Board == nil {
		return "", ErrNoBoard
	}
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", now.Format("20060102-150405")))
	if err := os.WriteFile(filename, []byte(RenderScreenshotHTML(g)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
