// SPDX-License-Identifier: MIT
package lexer

// REF: https://www.doxygen.nl/manual/commands.html

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// class identifies how a byte takes part in tokenization.
	class uint8

	// Lexer segments documentation comment text into Tokens.
	//
	// A Lexer is immutable after New & safe for concurrent use.
	Lexer struct {
		cfg Config

		// classes maps every byte to its class; bytes >= 0x80 stay classWord so multi-byte
		// runes always land in Word runs.
		classes [256]class
	}
)

const (
	classWord class = iota
	classIntroducer
	classEscape
	classDelimiter
	classWhitespace
	classNewLine
)

// tokensPerByte is a rough estimate used to size the output.
const tokensPerByte = 4

var defaultLexer = New()

// New creates a Lexer configured by opts.
func New(opts ...Option) *Lexer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	l := &Lexer{cfg: *cfg}
	l.classes[' '] = classWhitespace
	l.classes['\t'] = classWhitespace
	l.classes['\n'] = classNewLine
	l.classes[cfg.Introducer] = classIntroducer
	l.classes[cfg.Escape] = classEscape
	l.classes[cfg.GroupOpen] = classDelimiter
	l.classes[cfg.GroupClose] = classDelimiter

	return l
}

// Lex segments input using the default configuration.
func Lex(input string) Tokens { return defaultLexer.Lex(input) }

// Config obtains a copy of the Lexer's configuration.
func (l *Lexer) Config() Config { return l.cfg }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.cfg.Logger }

// Lex segments input into Tokens in a single forward pass.
//
// Concatenating the Val of every returned Token reproduces input exactly.
func (l *Lexer) Lex(input string) (tokens Tokens) {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		panic(fmt.Errorf("lexer input length overflow: %w", err))
	}

	tokens = make(Tokens, 0, len(input)/tokensPerByte+1)
	for index := 0; index < len(input); index++ {
		span := Span{Start: uint32(index), End: uint32(index + 1)}

		switch l.classes[input[index]] {
		case classIntroducer:
			tokens = append(tokens, Token{ID: TokenMarker, Val: input[index : index+1], Span: span})
		case classEscape:
			if last := tokens.tail(TokenMarker); last != nil && last.escape {
				last.extend(input, span.End)
				continue
			}
			tokens = append(tokens, Token{ID: TokenMarker, Val: input[index : index+1], Span: span, escape: true})
		case classDelimiter:
			tokens = append(tokens, Token{ID: TokenDelimiter, Val: input[index : index+1], Span: span})
		case classWhitespace:
			tokens = tokens.extendOrAppend(input, TokenWhitespace, span)
		case classNewLine:
			tokens = append(tokens, Token{ID: TokenNewLine, Val: input[index : index+1], Span: span})
		default:
			tokens = tokens.extendOrAppend(input, TokenWord, span)
		}
	}

	if l.cfg.Debug {
		// Debug operation is noisy.
		l.cfg.Logger.Debugf("lexed %d bytes: %s", len(input), spew.Sprint(tokens))
	}

	return
}

// tail returns the last Token if it has the given id.
func (ts Tokens) tail(id TokenID) *Token {
	if len(ts) < 1 || ts[len(ts)-1].ID != id {
		return nil
	}

	return &ts[len(ts)-1]
}

// extendOrAppend grows a trailing Token of the same id or starts a new one.
func (ts Tokens) extendOrAppend(input string, id TokenID, span Span) Tokens {
	if last := ts.tail(id); last != nil {
		last.extend(input, span.End)
		return ts
	}

	return append(ts, Token{ID: id, Val: input[span.Start:span.End], Span: span})
}

// extend the Token's view up to end.
func (t *Token) extend(input string, end uint32) {
	t.Span.End = end
	t.Val = input[t.Span.Start:end]
}
