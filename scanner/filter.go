package scanner

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

var ErrInvalidFilter = errors.New("invalid filter pattern")

// Filter excludes paths matching a regular expression. A nil *Filter
// includes every path.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter compiles expr. An empty expr yields a nil filter.
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		return nil, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidFilter, expr, err)
	}

	return &Filter{re: re}, nil
}

// Include reports whether path survives the filter. Paths that are not
// valid UTF-8 are always excluded when a pattern is set.
func (f *Filter) Include(path string) bool {
	if f == nil {
		return true
	}
	if !utf8.ValidString(path) {
		return false
	}
	return !f.re.MatchString(path)
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.re.String()
}
