// Package html2text converts HTML into readable plain text, keeping link
// targets and the rough shape of headings, lists, tables and paragraphs.
package html2text

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ConvertString converts the HTML in s to plain text. A nil opt uses the
// defaults.
func ConvertString(s string, opt *Option) (string, error) {
	if opt == nil {
		opt = &Option{}
	}
	if err := opt.validate(); err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}

	doc, err := parse(s, opt)
	if err != nil {
		return "", err
	}

	w := &walker{opt: opt}
	if err := w.walk(doc); err != nil {
		return "", err
	}

	var out bytes.Buffer
	out.WriteString(collapse(w.buf.String()))
	if opt.FooterURLs {
		w.links.writeFooter(&out)
	}
	return out.String(), nil
}

// Convert reads HTML from r, decoding it with opt.CharSet or the encoding
// declared by the document, and writes the plain text to w.
func Convert(w io.Writer, r io.Reader, opt *Option) error {
	if opt == nil {
		opt = &Option{}
	}
	enc, err := opt.encoding()
	if err != nil {
		return err
	}
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	} else if r, err = charset.NewReader(r, ""); err != nil {
		return err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	text, err := ConvertString(string(b), opt)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func parse(input string, opt *Option) (*html.Node, error) {
	s := normalize(input)

	if problems := diagnose(s); len(problems) > 0 {
		if !opt.IgnoreErrors {
			return nil, &MalformedInputError{Input: input, Problems: problems}
		}
		logger := opt.logger()
		for _, p := range problems {
			logger.Warn("recovered from malformed markup", "line", p.Line, "problem", p.Message)
		}
	}

	doc, err := html.ParseWithOptions(strings.NewReader(s), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, &MalformedInputError{Input: input, Err: err}
	}
	return doc, nil
}
