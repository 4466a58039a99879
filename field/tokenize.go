package field

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/tuido/internal/ascii"
)

// ErrNotASCII reports input containing a byte outside the ASCII range.
var ErrNotASCII = errors.New("field: input is not ASCII")

// Span is a half-open byte range [Start, End) within one logical line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Tokenize splits one logical line into maximal runs of whitespace and
// non-whitespace bytes. The returned spans partition the line in order:
// none is empty, there are no gaps and no overlaps, and the class of the
// first span follows the first byte of the line.
func Tokenize(line string) ([]Span, error) {
	if i := ascii.FirstInvalid(line); i >= 0 {
		return nil, notASCII(line, i)
	}
	return tokenize(line), nil
}

// tokenize is the non-validating core behind Tokenize. line must be ASCII.
func tokenize(line string) []Span {
	if line == "" {
		return nil
	}

	spans := make([]Span, 0, 4)
	start := 0
	inSpace := ascii.IsSpace(line[0])
	for i := 1; i < len(line); i++ {
		if ascii.IsSpace(line[i]) == inSpace {
			continue
		}
		spans = append(spans, Span{Start: start, End: i})
		start = i
		inSpace = !inSpace
	}
	if start < len(line) {
		spans = append(spans, Span{Start: start, End: len(line)})
	}
	return spans
}

func notASCII(s string, i int) error {
	return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrNotASCII, s[i], i)
}
