// SPDX-License-Identifier: MIT
package notation

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/fisherprime/notation/lexer"
)

type (
	// UnexpectedInputError describes input the grammar does not allow at its position.
	UnexpectedInputError struct {
		// Found is the offending literal.
		Found string
		// Expected lists the literals acceptable at that point.
		Expected []string
		// Span locates the offending token in the parsed input.
		Span lexer.Span
	}
)

// Parsing errors.
var (
	// ErrUnexpectedEndOfInput is reserved; the Parser does not return it.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrUnexpectedInput      = errors.New("unexpected input")
)

// Error is the error interface implementation for UnexpectedInputError.
func (e *UnexpectedInputError) Error() string {
	quoted := make([]string, len(e.Expected))
	for index := range e.Expected {
		quoted[index] = fmt.Sprintf("%q", e.Expected[index])
	}

	return fmt.Sprintf("%v %q at %s, expected one of: %s",
		ErrUnexpectedInput, e.Found, e.Span, strings.Join(quoted, ", "))
}

// Unwrap allows errors.Is matching against ErrUnexpectedInput.
func (e *UnexpectedInputError) Unwrap() error { return ErrUnexpectedInput }
