package problem

import "fmt"

// ParseError is one validation failure encountered while parsing a
// problem or solution file: a line number (1-based), the offending text,
// and a human-readable message. The parser collects every ParseError it
// finds rather than stopping at the first one.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

// Error renders `line N: message: "text"`.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}

// ParseErrors is a non-empty list of ParseError, itself an error. A failed
// problem.Parse or solution.Parse returns (nil, ParseErrors) — never a partial
// Problem/Solution alongside errors.
type ParseErrors []*ParseError

// Error renders all collected errors, one per line.
func (es ParseErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	s := fmt.Sprintf("%d parse errors:", len(es))
	for _, e := range es {
		s += "\n  " + e.Error()
	}

	return s
}
