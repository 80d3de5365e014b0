// SPDX-License-Identifier: MIT
package notation

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Strategy selects how a Notation's argument is located.
	Strategy int

	// Strategies maps a notation tag to its argument Strategy.
	//
	// Tags missing from the map use StrategyNone.
	Strategies map[string]Strategy
)

const (
	// StrategyNone never captures an argument.
	StrategyNone Strategy = iota
	// StrategyWhitespace captures the first Word after any whitespace following the tag.
	StrategyWhitespace
	// StrategyParen captures a Word wrapped in group delimiters directly after the tag,
	// e.g. `@code{.py}`.
	StrategyParen
)

// Well-known tags.
const (
	TagParam   = "param"
	TagCode    = "code"
	TagEndCode = "endcode"
)

var strategyNames = [...]string{
	StrategyNone:       "None",
	StrategyWhitespace: "Whitespace",
	StrategyParen:      "Paren",
}

var defaultStrategies = Strategies{
	TagParam: StrategyWhitespace,
	TagCode:  StrategyParen,

	// Inline formatting.
	"a": StrategyWhitespace, "b": StrategyWhitespace, "c": StrategyWhitespace,
	"p": StrategyWhitespace, "e": StrategyWhitespace, "em": StrategyWhitespace,
	"emoji": StrategyWhitespace,

	// Entity references.
	"def": StrategyWhitespace, "class": StrategyWhitespace, "category": StrategyWhitespace,
	"concept": StrategyWhitespace, "enum": StrategyWhitespace, "example": StrategyWhitespace,
	"extends": StrategyWhitespace, "file": StrategyWhitespace, "sa": StrategyWhitespace,
	"see": StrategyWhitespace, "retval": StrategyWhitespace,

	"exception": StrategyWhitespace, "throw": StrategyWhitespace, "throws": StrategyWhitespace,
}

// String is the fmt.Stringer implementation for Strategy.
func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// DefaultStrategies returns a copy of the built-in tag to Strategy mapping.
func DefaultStrategies() Strategies { return maps.Clone(defaultStrategies) }

// Lookup the Strategy for a tag.
func (s Strategies) Lookup(tag string) Strategy { return s[tag] }

// Keywords lists the tags with an explicit Strategy, sorted.
func (s Strategies) Keywords() (keywords []string) {
	keywords = maps.Keys(s)
	slices.Sort(keywords)

	return
}
