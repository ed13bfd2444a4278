// Package grapheme cuts user-visible strings (file names, search text) on
// grapheme cluster boundaries so that the title bar and prompt labels never
// show half a character.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Head returns the first n grapheme clusters of text.
func Head(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return text[:end]
}

// Truncate shortens text to at most width cells. When text is cut, tail is
// appended and counted against width.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	room := width - Width(tail)
	if room < 0 {
		room = 0
		tail = ""
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if used+w > room {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}
