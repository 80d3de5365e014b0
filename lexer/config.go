// SPDX-License-Identifier: MIT
package lexer

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	//
	// The structural characters are matched byte-wise; they must be ASCII.
	Config struct {
		Logger     logrus.FieldLogger
		Introducer byte
		Escape     byte
		GroupOpen  byte
		GroupClose byte
		Debug      bool
	}
)

const (
	// DefaultIntroducer is the character that introduces a notation.
	DefaultIntroducer = '@'

	// DefaultEscape is the character that, alone or in a run, stands for an escaped introducer.
	DefaultEscape = '\\'

	// DefaultGroupOpen is the delimiter opening a group when it follows a marker.
	DefaultGroupOpen = '{'

	// DefaultGroupClose is the delimiter closing a group when it follows a marker.
	DefaultGroupClose = '}'

	emptyByte byte = 0
)

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		Introducer: DefaultIntroducer,
		Escape:     DefaultEscape,
		GroupOpen:  DefaultGroupOpen,
		GroupClose: DefaultGroupClose,
		Logger:     logrus.New(),
	}
}

// Validate populates missing or unusable Config entries with defaults.
func (c *Config) Validate() {
	if !usable(c.Introducer) {
		c.Introducer = DefaultIntroducer
	}
	if !usable(c.Escape) {
		c.Escape = DefaultEscape
	}
	if !usable(c.GroupOpen) {
		c.GroupOpen = DefaultGroupOpen
	}
	if !usable(c.GroupClose) {
		c.GroupClose = DefaultGroupClose
	}

	// Overlapping characters would make the classification ambiguous.
	seen := map[byte]struct{}{}
	for _, b := range [...]byte{c.Introducer, c.Escape, c.GroupOpen, c.GroupClose} {
		seen[b] = struct{}{}
	}
	if len(seen) != 4 {
		c.Introducer, c.Escape = DefaultIntroducer, DefaultEscape
		c.GroupOpen, c.GroupClose = DefaultGroupOpen, DefaultGroupClose
	}

	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// usable reports whether b can serve as a structural character.
//
// Whitespace & newline keep their own token classes.
func usable(b byte) bool {
	return b != emptyByte && b < utf8.RuneSelf && b != ' ' && b != '\t' && b != '\n'
}
