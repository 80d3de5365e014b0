// SPDX-License-Identifier: MIT
package notation

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"gitlab.com/fisherprime/notation/lexer"
)

type (
	// Parser converts documentation comment text into grammar Items.
	//
	// A Parser is immutable after New & safe for concurrent use.
	Parser struct {
		lexer      *lexer.Lexer
		lexerOpts  []lexer.Option
		strategies Strategies
		logger     logrus.FieldLogger

		// groupOpen & groupClose mirror the lexer's group delimiters.
		groupOpen  string
		groupClose string

		debug   bool
		workers int
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
//
// Parsers without a WithLogger option log through it.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// New creates a Parser configured by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		strategies: DefaultStrategies(),
		workers:    runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}

	lexerOpts := []lexer.Option{lexer.WithDebug(p.debug)}
	if p.logger != nil {
		lexerOpts = append(lexerOpts, lexer.WithLogger(p.logger))
	}
	p.lexer = lexer.New(append(lexerOpts, p.lexerOpts...)...)

	cfg := p.lexer.Config()
	p.groupOpen, p.groupClose = string(cfg.GroupOpen), string(cfg.GroupClose)

	return p
}

// WithDebug configures the debug option; Parser & Lexer log their output.
func WithDebug(debug bool) Option { return func(p *Parser) { p.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(p *Parser) { p.logger = logger } }

// WithLexerOptions configures the Parser's Lexer.
func WithLexerOptions(opts ...lexer.Option) Option {
	return func(p *Parser) { p.lexerOpts = append(p.lexerOpts, opts...) }
}

// WithStrategy maps a tag to an argument Strategy.
func WithStrategy(tag string, s Strategy) Option {
	return func(p *Parser) { p.strategies[tag] = s }
}

// WithStrategies replaces the whole tag to Strategy mapping.
func WithStrategies(s Strategies) Option {
	return func(p *Parser) {
		if p.strategies = maps.Clone(s); p.strategies == nil {
			p.strategies = Strategies{}
		}
	}
}

// WithWorkers configures the pool size used by ParseAll.
func WithWorkers(n int) Option { return func(p *Parser) { p.workers = n } }

// Strategies obtains a copy of the Parser's tag to Strategy mapping.
func (p *Parser) Strategies() Strategies { return maps.Clone(p.strategies) }

// Lexer obtains the Parser's Lexer.
func (p *Parser) Lexer() *lexer.Lexer { return p.lexer }
