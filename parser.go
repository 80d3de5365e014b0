// SPDX-License-Identifier: MIT
package notation

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/notation/lexer"
)

// directionBrackets are the bracket bodies a parameter direction may take.
var directionBrackets = map[string][]Direction{
	"in]":     {DirectionIn},
	"out]":    {DirectionOut},
	"in,out]": {DirectionIn, DirectionOut},
	"out,in]": {DirectionIn, DirectionOut},
}

var defaultParser = New()

// Parse lexes & parses input using the default Parser.
func Parse(input string) (Items, error) { return defaultParser.Parse(input) }

// ParseTokens parses lexed tokens using the default Parser.
func ParseTokens(tokens lexer.Tokens) (Items, error) { return defaultParser.ParseTokens(tokens) }

// Parse lexes & parses input.
func (p *Parser) Parse(input string) (Items, error) { return p.ParseTokens(p.lexer.Lex(input)) }

// ParseTokens converts tokens into grammar Items in a single forward pass.
//
// No Items are returned alongside an error.
func (p *Parser) ParseTokens(tokens lexer.Tokens) (items Items, err error) {
	b := &itemBuilder{items: make(Items, 0, len(tokens)/2+1)}

	// skip counts upcoming tokens already consumed by the last Notation.
	skip := 0
	for index := range tokens {
		if skip > 0 {
			skip--
			continue
		}
		current, rest := tokens[index], tokens[index:]

		// No formatting inside of code regions.
		if !endsCode(rest) && b.openCode() {
			b.appendText(current.Val)
			continue
		}

		switch current.ID {
		case lexer.TokenMarker:
			if skip, err = p.marker(b, rest); err != nil {
				if p.debug {
					p.log().WithError(err).Debugf("items before failure: %s", spew.Sprint(b.result()))
				}
				return nil, err
			}
		case lexer.TokenWord:
			if tail := b.tail(); tail != nil && tail.Kind == ItemText {
				b.appendText(current.Val)
				continue
			}
			b.pushText(current.Val)
		case lexer.TokenWhitespace:
			// Whitespace runs collapse to a single space.
			tail := b.tail()
			switch {
			case tail == nil:
				b.pushText(" ")
			case tail.Kind == ItemText:
				b.appendText(" ")
			case tail.Kind == ItemNotation && len(tail.Params) > 0:
				// The space after an argument begins the description.
				b.pushText(" ")
			default:
				b.pushText("")
			}
		case lexer.TokenNewLine, lexer.TokenDelimiter:
			// Dropped unless a Text run is open.
			if tail := b.tail(); tail != nil && tail.Kind == ItemText {
				b.appendText(current.Val)
			}
		}
	}

	items = b.result()
	if p.debug {
		p.log().Debugf("parsed items: %s", spew.Sprint(items))
	}

	return
}

// marker handles a Marker token, rest[0], returning the count of following tokens it
// consumed.
//
// A Marker followed by anything other than a Delimiter or Word is dropped.
func (p *Parser) marker(b *itemBuilder, rest lexer.Tokens) (skip int, err error) {
	if len(rest) < 2 {
		return
	}

	next := rest[1]
	switch next.ID {
	case lexer.TokenDelimiter:
		switch next.Val {
		case p.groupOpen:
			b.push(GroupStart())
		case p.groupClose:
			b.push(GroupEnd())
		default:
			err = &UnexpectedInputError{
				Found:    next.Val,
				Expected: []string{p.groupOpen, p.groupClose},
				Span:     next.Span,
			}
			return
		}

		return 1, nil
	case lexer.TokenWord:
		return p.notation(b, rest)
	}

	return
}

// notation builds a Notation from rest[1] onward, rest[0] being its Marker.
func (p *Parser) notation(b *itemBuilder, rest lexer.Tokens) (skip int, err error) {
	word := rest[1]
	tag := word.Val

	// from is the index of the first token after the keyword.
	from := 2

	var meta []Direction
	if isParam(word.Val) {
		tag = TagParam

		if _, body, bracketed := strings.Cut(word.Val, "["); bracketed {
			var ok bool
			if meta, ok = directionBrackets[body]; !ok {
				err = &UnexpectedInputError{
					Found:    body,
					Expected: []string{"in]", "out]"},
					Span:     word.Span,
				}
				return
			}
		} else if index, detached := detachedDirection(rest, from); detached != nil {
			// `@param   [in] name`.
			meta, from = detached, index+1
		}
	}

	var params []string
	switch p.strategies.Lookup(tag) {
	case StrategyWhitespace:
		for index := from; index < len(rest); index++ {
			if rest[index].ID == lexer.TokenWhitespace {
				continue
			}
			if rest[index].ID == lexer.TokenWord {
				params, skip = []string{rest[index].Val}, index
			}
			break
		}
	case StrategyParen:
		if len(rest) > 4 &&
			rest[2].ID == lexer.TokenDelimiter && rest[2].Val == p.groupOpen &&
			rest[3].ID == lexer.TokenWord &&
			rest[4].ID == lexer.TokenDelimiter && rest[4].Val == p.groupClose {
			params, skip = []string{rest[3].Val}, 4
		}
	}
	if params == nil {
		skip = from - 1
	}

	b.push(Notation(tag, slices.Clone(meta), params...))
	if tag == TagEndCode {
		b.push(Text(""))
	}

	return
}

// detachedDirection looks for a direction bracket separated from the keyword by whitespace,
// returning its index in rest.
func detachedDirection(rest lexer.Tokens, from int) (index int, meta []Direction) {
	for index = from; index < len(rest) && rest[index].ID == lexer.TokenWhitespace; index++ {
	}
	if index == from || index >= len(rest) || rest[index].ID != lexer.TokenWord {
		return
	}

	body, ok := strings.CutPrefix(rest[index].Val, "[")
	if !ok {
		return
	}
	meta = directionBrackets[body]

	return
}

// isParam reports whether word is the param keyword, with or without a direction bracket.
func isParam(word string) bool {
	return word == TagParam || strings.HasPrefix(word, TagParam+"[")
}

// endsCode reports whether rest starts with an `@endcode` marker.
func endsCode(rest lexer.Tokens) bool {
	return len(rest) > 1 && rest[0].ID == lexer.TokenMarker &&
		rest[1].ID == lexer.TokenWord && rest[1].Val == TagEndCode
}

// log obtains the Parser's logger, falling back to the package logger.
func (p *Parser) log() logrus.FieldLogger {
	if p.logger != nil {
		return p.logger
	}

	return fLogger
}
