package html2text

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// MaxDepth is the deepest element nesting the converter descends into.
// Deeper documents fail with ErrTooDeep.
const MaxDepth = 256

var spaces = regexp.MustCompile(`[\t\n\f\r ]+`)

func attr(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// NextElementSiblingName returns the lower-cased tag name of the first
// element following node among its siblings, or "" if there is none.
func NextElementSiblingName(node *html.Node) string {
	for s := node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return strings.ToLower(s.Data)
		}
	}
	return ""
}

// PrevElementSiblingName is the backward counterpart of NextElementSiblingName.
func PrevElementSiblingName(node *html.Node) string {
	for s := node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return strings.ToLower(s.Data)
		}
	}
	return ""
}

func isHeading(name string) bool {
	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// tagRule is the formatting applied to one element. open runs before the
// children and reports whether they should be visited; close runs after
// them, start being the buffer offset where the element's output begins.
type tagRule struct {
	open  func(w *walker, node *html.Node) bool
	close func(w *walker, node *html.Node, start int)
}

func emit(s string) func(*walker, *html.Node) bool {
	return func(w *walker, _ *html.Node) bool {
		w.buf.WriteString(s)
		return true
	}
}

func skip(s string) func(*walker, *html.Node) bool {
	return func(w *walker, _ *html.Node) bool {
		w.buf.WriteString(s)
		return false
	}
}

func trail(s string) func(*walker, *html.Node, int) {
	return func(w *walker, _ *html.Node, _ int) {
		w.buf.WriteString(s)
	}
}

// trailUnlessDiv appends a newline unless a div follows; with last set the
// newline is also dropped when no element follows at all.
func trailUnlessDiv(last bool) func(*walker, *html.Node, int) {
	return func(w *walker, node *html.Node, _ int) {
		next := NextElementSiblingName(node)
		if next == "div" || (last && next == "") {
			return
		}
		w.buf.WriteString("\n")
	}
}

var tagRules = map[string]tagRule{
	"hr":     {open: skip("------\n")},
	"style":  {open: skip("")},
	"head":   {open: skip("")},
	"title":  {open: skip("")},
	"meta":   {open: skip("")},
	"script": {open: skip("")},
	"h1":     {open: emit("\n"), close: trail("\n")},
	"h2":     {open: emit("\n"), close: trail("\n")},
	"h3":     {open: emit("\n"), close: trail("\n")},
	"h4":     {open: emit("\n"), close: trail("\n")},
	"h5":     {open: emit("\n"), close: trail("\n")},
	"h6":     {open: emit("\n"), close: trail("\n")},
	"ol":     {open: emit("\n")},
	"ul":     {open: emit("\n")},
	"td":     {open: emit("\t")},
	"th":     {open: emit("\t")},
	"tr":     {open: emit("\n")},
	"p":      {open: emit("\n"), close: trailUnlessDiv(false)},
	"div":    {open: emit("\n"), close: trailUnlessDiv(true)},
	"li":     {open: emit("- "), close: trail("\n")},
	"br":     {close: trailUnlessDiv(false)},
	"img":    {open: image},
	"a":      {close: link},
}

func image(w *walker, node *html.Node) bool {
	if !w.opt.DropImages {
		w.buf.WriteString(attr(node, "alt"))
	}
	return true
}

func link(w *walker, node *html.Node, start int) {
	text := string(w.buf.Bytes()[start:])
	w.buf.Truncate(start)

	href := attr(node, "href")
	switch {
	case w.opt.DropLinks:
		w.buf.WriteString(text)
	case href == "":
		if attr(node, "name") != "" {
			w.buf.WriteString("[" + text + "]")
		} else {
			w.buf.WriteString(text)
		}
	case href == text || href == "mailto:"+text || href == "http://"+text || href == "https://"+text:
		w.buf.WriteString(text)
	case w.opt.FooterURLs:
		w.buf.WriteString(text + "[" + strconv.Itoa(w.links.register(href, text)) + "]")
	default:
		w.buf.WriteString("[" + text + "](" + href + ")")
	}

	if isHeading(NextElementSiblingName(node)) {
		w.buf.WriteString("\n")
	}
}

// walker carries the state of a single conversion.
type walker struct {
	buf   bytes.Buffer
	opt   *Option
	links linkIndex
	depth int
}

func (w *walker) walk(node *html.Node) error {
	switch node.Type {
	case html.TextNode:
		w.buf.WriteString(spaces.ReplaceAllString(node.Data, " "))
		return nil
	case html.DoctypeNode, html.CommentNode:
		return nil
	}

	w.depth++
	defer func() { w.depth-- }()
	if w.depth > MaxDepth {
		return ErrTooDeep
	}

	var rule tagRule
	if node.Type == html.ElementNode {
		rule = tagRules[strings.ToLower(node.Data)]
	}
	start := w.buf.Len()
	if rule.open != nil && !rule.open(w, node) {
		return nil
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if err := w.walk(c); err != nil {
			return err
		}
	}
	if rule.close != nil {
		rule.close(w, node, start)
	}
	return nil
}
