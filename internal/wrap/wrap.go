// Package wrap breaks plain text into lines of bounded display width.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// String wraps every line of s at spaces so that no line is wider than
// width cells. Words wider than width are left on a line of their own.
// A width <= 0 returns s unchanged.
func String(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = line(l, width)
	}
	return strings.Join(lines, "\n")
}

func line(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	var (
		b   strings.Builder
		cur int
	)
	for _, word := range strings.Split(s, " ") {
		if word == "" {
			continue
		}
		w := runewidth.StringWidth(word)
		switch {
		case cur == 0:
		case cur+1+w > width:
			b.WriteByte('\n')
			cur = 0
		default:
			b.WriteByte(' ')
			cur++
		}
		b.WriteString(word)
		cur += w
	}
	return b.String()
}
