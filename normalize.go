package html2text

import (
	"regexp"
	"strings"
)

var newlines = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
)

var nbsp = strings.NewReplacer(
	"&nbsp;", " ",
	"\u00a0", " ",
)

// FixNewlines unifies line endings: "\r\n" and lone "\r" become "\n".
func FixNewlines(s string) string {
	return newlines.Replace(s)
}

func normalize(s string) string {
	return nbsp.Replace(FixNewlines(s))
}

var lineEdges = regexp.MustCompile(`[ \t]*\n[ \t]*`)

// collapse strips blanks around every newline and trims the whole text.
func collapse(s string) string {
	return strings.Trim(lineEdges.ReplaceAllString(s, "\n"), " \t\n\r\x00\x0b")
}
