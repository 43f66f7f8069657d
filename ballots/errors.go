// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeader             = errors.New("missing '# <m> candidates' header")
	ErrMalformedBallotLine       = errors.New("malformed ballot line")
	ErrBallotAlternativeMismatch = errors.New("ballot alternatives do not match the declared candidates")
	ErrUnsupportedFormat         = errors.New("unsupported input format")
	ErrMissingScheme             = errors.New("no voting scheme given")
)

// LineError ties a parse failure to its 1-based line in the ballot text
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
