/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

import "regexp"

// TokenizeOption configures Tokenize.
type TokenizeOption func(*tokenizeConfig)

type tokenizeConfig struct {
	trace func(lexeme string)
}

// WithTrace reports each raw lexeme as it is produced, mirroring the
// Python original's verbose=True tracing (which wrote "TOKEN: %s" to
// stderr). It is wired to the CLI's --verbose flag via a zap logger.
func WithTrace(trace func(lexeme string)) TokenizeOption {
	return func(c *tokenizeConfig) {
		c.trace = trace
	}
}

type quoteState int

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
)

// Tokenize splits a query string into whitespace-separated lexemes,
// honoring single/double quoting and backslash escapes. Quoting does
// not start a new lexeme: it only changes how subsequent characters
// are interpreted until the matching close.
func Tokenize(query string, opts ...TokenizeOption) ([]string, error) {
	var cfg tokenizeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	runes := []rune(query)
	var lexemes []string
	pos := 0
	for {
		lexeme, next, err := readLexeme(runes, pos)
		if err != nil {
			return nil, err
		}
		if len(lexeme) == 0 {
			break
		}
		if cfg.trace != nil {
			cfg.trace(lexeme)
		}
		lexemes = append(lexemes, lexeme)
		pos = next
	}
	return lexemes, nil
}

// readLexeme scans a single lexeme starting at start, returning the
// lexeme text and the position to resume scanning from.
func readLexeme(t []rune, start int) (string, int, error) {
	i := start
	for i < len(t) && t[i] == ' ' {
		i++
	}

	quote := quoteNone
	var buf []rune

scan:
	for {
		switch {
		case i == len(t):
			if quote != quoteNone {
				return "", 0, syntaxErrorf("unclosed quotes")
			}
			break scan

		case t[i] == '"':
			switch quote {
			case quoteNone:
				quote = quoteDouble
			case quoteSingle:
				buf = append(buf, t[i])
			case quoteDouble:
				quote = quoteNone
			}

		case t[i] == '\'':
			switch quote {
			case quoteNone:
				quote = quoteSingle
			case quoteSingle:
				quote = quoteNone
			case quoteDouble:
				buf = append(buf, t[i])
			}

		case t[i] == '\\' && quote != quoteSingle:
			i++
			if i == len(t) {
				return "", 0, syntaxErrorf("invalid escape")
			}
			buf = append(buf, t[i])

		case t[i] == ' ' && quote == quoteNone:
			break scan

		default:
			buf = append(buf, t[i])
		}
		i++
	}

	next := i + 1
	if next > len(t) {
		next = len(t)
	}
	return string(buf), next, nil
}

// TokenKind distinguishes the two tagged variants of a Token.
type TokenKind int

const (
	TokenOp TokenKind = iota
	TokenAtom
)

// Token is a lexeme classified as either an operator symbol or a
// key:value atom.
type Token struct {
	Kind  TokenKind
	Sym   string // valid when Kind == TokenOp
	Key   string // valid when Kind == TokenAtom
	Value string // valid when Kind == TokenAtom
}

var operatorSymbols = map[string]bool{
	"not": true,
	"-":   true,
	"and": true,
	"or":  true,
	"|":   true,
	"(":   true,
	")":   true,
}

// atomKeyPattern deliberately permits digits 0-5 but not 6-9 in atom
// keys. This looks like a typo for 0-9 in the system this engine was
// modeled on, but the behavior is preserved verbatim: see SPEC_FULL.md
// §5 and DESIGN.md.
var atomKeyPattern = regexp.MustCompile(`^([-a-z0-5]+):(.*)$`)

// Annotate classifies each lexeme as an operator or a key:value atom.
func Annotate(lexemes []string) []Token {
	tokens := make([]Token, 0, len(lexemes))
	for _, lx := range lexemes {
		if operatorSymbols[lx] {
			tokens = append(tokens, Token{Kind: TokenOp, Sym: lx})
			continue
		}
		if m := atomKeyPattern.FindStringSubmatch(lx); m != nil {
			tokens = append(tokens, Token{Kind: TokenAtom, Key: m[1], Value: m[2]})
			continue
		}
		tokens = append(tokens, Token{Kind: TokenAtom, Key: lx, Value: ""})
	}
	return tokens
}
