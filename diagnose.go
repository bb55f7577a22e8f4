package html2text

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// elements whose end tag may be omitted
var impliedEnd = map[string]bool{
	"html": true, "head": true, "body": true, "p": true, "li": true,
	"dt": true, "dd": true, "option": true, "optgroup": true,
	"rb": true, "rt": true, "rtc": true, "rp": true, "colgroup": true,
	"caption": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "td": true, "th": true,
}

// elements whose start tag may be omitted, so a lone end tag is valid
var impliedStart = map[string]bool{
	"html": true, "head": true, "body": true,
}

func inForeignContent(open []string) bool {
	for _, name := range open {
		if name == "svg" || name == "math" {
			return true
		}
	}
	return false
}

// diagnose tokenizes s and reports the structural problems the tree builder
// would silently repair.
func diagnose(s string) []Problem {
	z := html.NewTokenizer(strings.NewReader(s))
	var (
		problems []Problem
		open     []string
		line     = 1
	)
	report := func(msg string) {
		problems = append(problems, Problem{Line: line, Message: msg})
	}
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				report(err.Error())
			}
			for i := len(open) - 1; i >= 0; i-- {
				if !impliedEnd[open[i]] {
					report("unclosed element <" + open[i] + ">")
				}
			}
			return problems
		case html.StartTagToken:
			b, _ := z.TagName()
			name := string(b)
			if name == "noscript" {
				// parsed as markup, scripting is disabled
				z.NextIsNotRawText()
			}
			if !voidElements[name] {
				open = append(open, name)
			}
		case html.SelfClosingTagToken:
			// "/>" only closes void and foreign elements; the tree builder
			// keeps any other element open
			b, _ := z.TagName()
			name := string(b)
			if !voidElements[name] && name != "svg" && name != "math" && !inForeignContent(open) {
				open = append(open, name)
			}
		case html.EndTagToken:
			b, _ := z.TagName()
			name := string(b)
			i := len(open) - 1
			for i >= 0 && open[i] != name {
				i--
			}
			if i < 0 {
				if !impliedStart[name] {
					report("unexpected end tag </" + name + ">")
				}
				break
			}
			for _, inner := range open[i+1:] {
				if !impliedEnd[inner] {
					report("element <" + inner + "> not closed before </" + name + ">")
				}
			}
			open = open[:i]
		}
		line += bytes.Count(z.Raw(), []byte("\n"))
	}
}
