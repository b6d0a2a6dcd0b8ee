// Package: vcolor/dimacs
//
// errors.go — sentinel errors for the dimacs package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. *ParseError wraps a sentinel with the offending line number
// and text via %w, never by reformatting the sentinel's own message.
package dimacs

import (
	"errors"
	"fmt"
)

// ErrMalformedLine indicates a line's first token is not one of the
// recognized kinds, or a recognized line is missing/has malformed fields
// (bad integers, wrong token count, out-of-range vertex id).
var ErrMalformedLine = errors.New("dimacs: malformed line")

// ErrDuplicateProblemLine indicates a second "p edge ..." line appeared
// after one was already seen.
var ErrDuplicateProblemLine = errors.New("dimacs: duplicate problem line")

// ErrNoProblemLine indicates the input reached EOF without ever defining
// a "p edge N M" problem line, so no graph could be constructed.
var ErrNoProblemLine = errors.New("dimacs: no problem line in input")

// ParseError reports the 1-based line number and text where parsing
// failed, wrapping one of this package's sentinels.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }
