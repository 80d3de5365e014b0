// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strings"
)

type (
	// TokenID int holding an identifier for the Token types.
	TokenID int

	// Span is a byte range into the lexed input; Start inclusive, End exclusive.
	Span struct {
		Start uint32
		End   uint32
	}

	// Token type holding the classification & literal text of a lexed run.
	Token struct {
		// Val is a view into the lexed input, never a copy.
		Val  string
		Span Span
		ID   TokenID

		// escape is set for Markers produced by escape characters.
		escape bool
	}

	// Tokens is a type wrapper for []Token.
	Tokens []Token
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               TokenID = iota // Consume 0 to start actual numbering at 1.
	TokenMarker                    // '@' or a run of '\'.
	TokenDelimiter                 // '{' or '}'.
	TokenWord                      // Anything else, merged.
	TokenWhitespace                // Spaces & tabs, merged.
	TokenNewLine                   // A single '\n'.
)

var tokenNames = [...]string{
	TokenMarker:     "Marker",
	TokenDelimiter:  "Delimiter",
	TokenWord:       "Word",
	TokenWhitespace: "Whitespace",
	TokenNewLine:    "NewLine",
}

// String is the fmt.Stringer implementation for TokenID.
func (id TokenID) String() string {
	if id > 0 && int(id) < len(tokenNames) {
		return tokenNames[id]
	}

	return fmt.Sprintf("TokenID(%d)", int(id))
}

// Len is the byte length of the Span.
func (s Span) Len() uint32 { return s.End - s.Start }

// String is the fmt.Stringer implementation for Span.
func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Start, s.End) }

// IsEscape reports whether a Marker was produced by escape characters.
func (t Token) IsEscape() bool { return t.escape }

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string { return fmt.Sprintf("%s(%q)@%s", t.ID, t.Val, t.Span) }

// String reconstructs the lexed input.
func (ts Tokens) String() string {
	var buffer strings.Builder
	for index := range ts {
		buffer.WriteString(ts[index].Val)
	}

	return buffer.String()
}
