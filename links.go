package html2text

import (
	"bytes"
	"strconv"
	"strings"
)

type indexedLink struct {
	seq  int
	text string
}

// linkIndex numbers link targets in the order they are first seen.
// The zero value is ready to use.
type linkIndex struct {
	urls    []string
	entries map[string]indexedLink
}

func (x *linkIndex) register(url, text string) int {
	if e, ok := x.entries[url]; ok {
		return e.seq
	}
	if x.entries == nil {
		x.entries = make(map[string]indexedLink)
	}
	e := indexedLink{seq: len(x.urls), text: text}
	x.entries[url] = e
	x.urls = append(x.urls, url)
	return e.seq
}

func (x *linkIndex) len() int {
	return len(x.urls)
}

func (x *linkIndex) writeFooter(buf *bytes.Buffer) {
	if x.len() == 0 {
		return
	}
	buf.WriteString("\n\n------\n\n")
	for _, url := range x.urls {
		e := x.entries[url]
		buf.WriteString("[" + strconv.Itoa(e.seq) + "] ")
		if text := strings.TrimSpace(spaces.ReplaceAllString(e.text, " ")); text != "" {
			buf.WriteString(text + " ")
		}
		buf.WriteString(url + "\n")
	}
}
