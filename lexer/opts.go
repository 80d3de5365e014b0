// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type.
type Option func(*Config)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithIntroducer configures the notation introducer.
func WithIntroducer(b byte) Option { return func(c *Config) { c.Introducer = b } }

// WithEscape configures the escape character.
func WithEscape(b byte) Option { return func(c *Config) { c.Escape = b } }

// WithGroupDelimiters configures the group open & close delimiters.
func WithGroupDelimiters(openDelim, closeDelim byte) Option {
	return func(c *Config) { c.GroupOpen, c.GroupClose = openDelim, closeDelim }
}

// WithConfig replaces the whole configuration.
//
// Options applied after this one still take effect.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }
