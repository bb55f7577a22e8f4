package html2text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func findElement(node *html.Node, name string) *html.Node {
	if node.Type == html.ElementNode && node.Data == name {
		return node
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if n := findElement(c, name); n != nil {
			return n
		}
	}
	return nil
}

func TestElementSiblingName(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div><p>a</p> text <!-- c --> <SPAN>b</SPAN> tail</div>`))
	require.NoError(t, err)

	p := findElement(doc, "p")
	span := findElement(doc, "span")
	require.NotNil(t, p)
	require.NotNil(t, span)

	assert.Equal(t, "span", NextElementSiblingName(p))
	assert.Equal(t, "", PrevElementSiblingName(p))
	assert.Equal(t, "p", PrevElementSiblingName(span))
	assert.Equal(t, "", NextElementSiblingName(span))
}

func TestLinkIndex(t *testing.T) {
	var x linkIndex
	assert.Equal(t, 0, x.register("http://a.com", "a"))
	assert.Equal(t, 1, x.register("http://b.com", ""))
	assert.Equal(t, 0, x.register("http://a.com", "again"))
	assert.Equal(t, 2, x.len())

	var buf bytes.Buffer
	x.writeFooter(&buf)
	assert.Equal(t, "\n\n------\n\n[0] a http://a.com\n[1] http://b.com\n", buf.String())

	var empty linkIndex
	buf.Reset()
	empty.writeFooter(&buf)
	assert.Empty(t, buf.String())
}

func TestDivTrailingNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// last div: no newline, so text runs on
		{"<div><div>a</div>b</div>", "ab"},
		{"<div>a</div><p>b</p>", "a\n\nb"},
		{"<div>a</div><div>b</div>", "a\nb"},
		{"<p>a</p>b", "a\nb"},
		{"a<br><div>b</div>", "a\nb"},
	}
	for _, tt := range tests {
		got, err := ConvertString(tt.in, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
