package html2text

import (
	"errors"
	"fmt"
)

// ErrTooDeep is returned when the markup nests elements deeper than MaxDepth.
var ErrTooDeep = errors.New("html2text: markup nested too deeply")

// Problem is a structural defect found in the input markup.
type Problem struct {
	Line    int
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("line %d: %s", p.Line, p.Message)
}

// MalformedInputError reports markup that could not be converted without
// recovering from structural problems.
type MalformedInputError struct {
	Input    string
	Problems []Problem
	Err      error
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Err != nil:
		return "html2text: could not load markup: " + e.Err.Error()
	case len(e.Problems) == 1:
		return "html2text: badly formed markup: " + e.Problems[0].String()
	case len(e.Problems) > 1:
		return fmt.Sprintf("html2text: badly formed markup: %s (and %d more)", e.Problems[0], len(e.Problems)-1)
	}
	return "html2text: badly formed markup"
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// InvalidOptionError reports an unrecognized option key or an unusable value.
type InvalidOptionError struct {
	Key    string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	if e.Key == "" {
		return "html2text: invalid options: " + e.Reason
	}
	return fmt.Sprintf("html2text: invalid option %q: %s", e.Key, e.Reason)
}
