// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
)

// ignoreSpan compares tokens by class & text only.
var ignoreSpan = cmpopts.IgnoreFields(Token{}, "Span")

func tok(id TokenID, val string) Token {
	return Token{ID: id, Val: val, escape: id == TokenMarker && val != "" && val[0] == '\\'}
}

func TestLexer_Lex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tokens
	}{
		{
			name:  "notation",
			input: "@name Memory Management",
			want: Tokens{
				tok(TokenMarker, "@"),
				tok(TokenWord, "name"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Memory"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Management"),
			},
		},
		{
			name:  "escaped notation",
			input: "\\name Memory Management",
			want: Tokens{
				tok(TokenMarker, "\\"),
				tok(TokenWord, "name"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Memory"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Management"),
			},
		},
		{
			name:  "escape run",
			input: "\\\\name Memory",
			want: Tokens{
				tok(TokenMarker, "\\\\"),
				tok(TokenWord, "name"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Memory"),
			},
		},
		{
			name:  "long escape run",
			input: "\\\\\\brief",
			want: Tokens{
				tok(TokenMarker, "\\\\\\"),
				tok(TokenWord, "brief"),
			},
		},
		{
			name:  "introducer is never merged",
			input: "@@\\@\\",
			want: Tokens{
				tok(TokenMarker, "@"),
				tok(TokenMarker, "@"),
				tok(TokenMarker, "\\"),
				tok(TokenMarker, "@"),
				tok(TokenMarker, "\\"),
			},
		},
		{
			name:  "groups",
			input: "@{\n* @name Memory Management\n@}",
			want: Tokens{
				tok(TokenMarker, "@"),
				tok(TokenDelimiter, "{"),
				tok(TokenNewLine, "\n"),
				tok(TokenWord, "*"),
				tok(TokenWhitespace, " "),
				tok(TokenMarker, "@"),
				tok(TokenWord, "name"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Memory"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "Management"),
				tok(TokenNewLine, "\n"),
				tok(TokenMarker, "@"),
				tok(TokenDelimiter, "}"),
			},
		},
		{
			name:  "whitespace runs & newlines",
			input: "a \t b\n\n",
			want: Tokens{
				tok(TokenWord, "a"),
				tok(TokenWhitespace, " \t "),
				tok(TokenWord, "b"),
				tok(TokenNewLine, "\n"),
				tok(TokenNewLine, "\n"),
			},
		},
		{
			name:  "delimiters are never merged",
			input: "{{}}",
			want: Tokens{
				tok(TokenDelimiter, "{"),
				tok(TokenDelimiter, "{"),
				tok(TokenDelimiter, "}"),
				tok(TokenDelimiter, "}"),
			},
		},
		{
			name:  "multi-byte word",
			input: "@brief héllo→wörld",
			want: Tokens{
				tok(TokenMarker, "@"),
				tok(TokenWord, "brief"),
				tok(TokenWhitespace, " "),
				tok(TokenWord, "héllo→wörld"),
			},
		},
		{
			name:  "empty",
			input: "",
			want:  Tokens{},
		},
	}

	l := New(WithLogger(logrus.New()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Lex(tt.input)
			if diff := cmp.Diff(tt.want, got, ignoreSpan, cmp.AllowUnexported(Token{}), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Lexer.Lex() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_Lex_spans(t *testing.T) {
	input := "@param[in]\tx  {y}\n"
	got := Lex(input)

	var end uint32
	for index, token := range got {
		if token.Span.Start != end {
			t.Errorf("token %d starts at %d, want %d", index, token.Span.Start, end)
		}
		if want := input[token.Span.Start:token.Span.End]; token.Val != want {
			t.Errorf("token %d Val = %q, span holds %q", index, token.Val, want)
		}
		end = token.Span.End
	}
	if int(end) != len(input) {
		t.Errorf("spans end at %d, want %d", end, len(input))
	}
}

func TestLexer_Lex_lossless(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"@code{.py}\nfn main() {}\n@endcode",
		"\\\\\\param[in,out] a\t\tthe a\n@{ @} @ \\",
		"ünïcödé @see ✓ {}\r\n",
		"\xff\xfe@\x80",
	}

	for _, input := range inputs {
		first := Lex(input)
		if got := first.String(); got != input {
			t.Errorf("Tokens.String() = %q, want %q", got, input)
		}

		second := Lex(first.String())
		if diff := cmp.Diff(first, second, cmp.AllowUnexported(Token{}), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("re-lexing %q mismatch (-first +second):\n%s", input, diff)
		}
	}
}

func TestToken_IsEscape(t *testing.T) {
	got := Lex("@a\\b")
	if got[0].IsEscape() {
		t.Errorf("introducer marker reported as escape")
	}
	if !got[2].IsEscape() {
		t.Errorf("escape marker not reported as escape")
	}
}

func TestNew_custom(t *testing.T) {
	l := New(WithIntroducer('#'), WithGroupDelimiters('(', ')'))
	got := l.Lex("#( @x )")
	want := Tokens{
		tok(TokenMarker, "#"),
		tok(TokenDelimiter, "("),
		tok(TokenWhitespace, " "),
		tok(TokenWord, "@x"),
		tok(TokenWhitespace, " "),
		tok(TokenDelimiter, ")"),
	}
	if diff := cmp.Diff(want, got, ignoreSpan, cmp.AllowUnexported(Token{})); diff != "" {
		t.Errorf("Lexer.Lex() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "zero",
			cfg:  Config{},
			want: Config{Introducer: '@', Escape: '\\', GroupOpen: '{', GroupClose: '}'},
		},
		{
			name: "non-ascii & whitespace",
			cfg:  Config{Introducer: 0xc3, Escape: ' ', GroupOpen: '(', GroupClose: ')'},
			want: Config{Introducer: '@', Escape: '\\', GroupOpen: '(', GroupClose: ')'},
		},
		{
			name: "overlapping",
			cfg:  Config{Introducer: '#', Escape: '#', GroupOpen: '(', GroupClose: ')'},
			want: Config{Introducer: '@', Escape: '\\', GroupOpen: '{', GroupClose: '}'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Validate()
			if tt.cfg.Logger == nil {
				t.Fatalf("Config.Validate() left a nil Logger")
			}
			if diff := cmp.Diff(tt.want, tt.cfg, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
				t.Errorf("Config.Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkLexer_Lex(b *testing.B) {
	src := "@param[in] random This is, without a doubt, a random argument.\n@code{.c}\nint x = {0};\n@endcode"

	l := New(WithLogger(logrus.New()))

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = l.Lex(src)
	}
}
