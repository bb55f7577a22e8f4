package html2text

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// Option controls a conversion. The zero value converts strictly, keeps
// links inline and renders image alt text.
type Option struct {
	// IgnoreErrors converts badly formed markup on a best-effort basis
	// instead of failing with a MalformedInputError.
	IgnoreErrors bool
	DropLinks    bool
	DropImages   bool
	// FooterURLs replaces inline link targets with "[n]" references and
	// lists the targets after the text.
	FooterURLs bool
	// CharSet names the encoding Convert decodes its input with. When
	// empty the encoding is sniffed from the document.
	CharSet string

	// Logger receives the problems recovered from when IgnoreErrors is
	// set. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option keys accepted by OptionFromMap and LoadOption.
const (
	KeyIgnoreErrors = "ignore_errors"
	KeyDropLinks    = "drop_links"
	KeyDropImages   = "drop_images"
	KeyFooterURLs   = "footer_urls"
	KeyCharSet      = "char_set"
)

// NewOption builds an Option from the loosely typed forms callers pass
// around: nil for defaults, a bool meaning ignore_errors, a map of option
// keys, or an Option value or pointer.
func NewOption(v any) (*Option, error) {
	switch v := v.(type) {
	case nil:
		return &Option{}, nil
	case bool:
		return &Option{IgnoreErrors: v}, nil
	case map[string]any:
		return OptionFromMap(v)
	case Option:
		if err := v.validate(); err != nil {
			return nil, err
		}
		return &v, nil
	case *Option:
		if v == nil {
			return &Option{}, nil
		}
		if err := v.validate(); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, &InvalidOptionError{Reason: fmt.Sprintf("unsupported options value of type %T", v)}
}

// OptionFromMap converts a map of option keys into an Option. Unknown keys
// are rejected before any value is looked at.
func OptionFromMap(m map[string]any) (*Option, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch k {
		case KeyIgnoreErrors, KeyDropLinks, KeyDropImages, KeyFooterURLs, KeyCharSet:
		default:
			return nil, &InvalidOptionError{Key: k, Reason: "unknown option"}
		}
	}

	opt := &Option{}
	flags := map[string]*bool{
		KeyIgnoreErrors: &opt.IgnoreErrors,
		KeyDropLinks:    &opt.DropLinks,
		KeyDropImages:   &opt.DropImages,
		KeyFooterURLs:   &opt.FooterURLs,
	}
	for _, k := range keys {
		v := m[k]
		if k == KeyCharSet {
			s, ok := v.(string)
			if !ok && v != nil {
				return nil, &InvalidOptionError{Key: k, Reason: fmt.Sprintf("want string, got %T", v)}
			}
			opt.CharSet = s
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return nil, &InvalidOptionError{Key: k, Reason: fmt.Sprintf("want bool, got %T", v)}
		}
		*flags[k] = b
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// LoadOption reads a YAML document of option keys. An empty document
// yields the defaults.
func LoadOption(r io.Reader) (*Option, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("html2text: reading options: %w", err)
	}
	return OptionFromMap(m)
}

func (o *Option) validate() error {
	_, err := o.encoding()
	return err
}

func (o *Option) encoding() (encoding.Encoding, error) {
	if o.CharSet == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(o.CharSet)
	if err != nil {
		return nil, &InvalidOptionError{Key: KeyCharSet, Reason: fmt.Sprintf("unsupported character set %q", o.CharSet)}
	}
	return enc, nil
}

func (o *Option) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
