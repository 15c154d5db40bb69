/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expected []string
		wantErr  string
		focus    bool // if true, run only tests with focus set to true
	}{
		{
			name:     "empty",
			query:    "",
			expected: nil,
		},
		{
			name:     "simple words",
			query:    "path:/etc and symlink",
			expected: []string{"path:/etc", "and", "symlink"},
		},
		{
			name:     "repeated spaces collapse",
			query:    "path:/etc    and   symlink",
			expected: []string{"path:/etc", "and", "symlink"},
		},
		{
			name:     "parens are standalone lexemes",
			query:    "( size:1024 or size:2048 )",
			expected: []string{"(", "size:1024", "or", "size:2048", ")"},
		},
		{
			name:     "double quotes preserve spaces",
			query:    `regex:"a b c"`,
			expected: []string{`regex:a b c`},
		},
		{
			name:     "double quote escape",
			query:    `regex:"a\"b"`,
			expected: []string{`regex:a"b`},
		},
		{
			name:     "single quotes disable escapes",
			query:    `regex:'a\b'`,
			expected: []string{`regex:a\b`},
		},
		{
			name:     "single quote literal inside double quotes",
			query:    `regex:"it's"`,
			expected: []string{`regex:it's`},
		},
		{
			name:     "double quote literal inside single quotes",
			query:    `regex:'he said "hi"'`,
			expected: []string{`regex:he said "hi"`},
		},
		{
			name:     "quotes mid-lexeme do not split it",
			query:    `a"b c"d`,
			expected: []string{"ab cd"},
		},
		{
			name:    "unclosed double quote",
			query:   `regex:"a`,
			wantErr: "unclosed quotes",
		},
		{
			name:    "unclosed single quote",
			query:   `regex:'a`,
			wantErr: "unclosed quotes",
		},
		{
			name:    "trailing backslash",
			query:   `a\`,
			wantErr: "invalid escape",
		},
	}

	focussed := false
	for _, tc := range cases {
		if tc.focus {
			focussed = true
			break
		}
	}

	for _, tc := range cases {
		if focussed && !tc.focus {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Tokenize(tc.query)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}

	if focussed {
		t.Fatalf("testcase(s) still focussed")
	}
}

func TestTokenizeTrace(t *testing.T) {
	var traced []string
	_, err := Tokenize("path:/etc and symlink", WithTrace(func(lexeme string) {
		traced = append(traced, lexeme)
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"path:/etc", "and", "symlink"}, traced)
}

func TestAnnotate(t *testing.T) {
	cases := []struct {
		name     string
		lexemes  []string
		expected []Token
	}{
		{
			name:     "operators",
			lexemes:  []string{"not", "-", "and", "or", "|", "(", ")"},
			expected: []Token{
				{Kind: TokenOp, Sym: "not"},
				{Kind: TokenOp, Sym: "-"},
				{Kind: TokenOp, Sym: "and"},
				{Kind: TokenOp, Sym: "or"},
				{Kind: TokenOp, Sym: "|"},
				{Kind: TokenOp, Sym: "("},
				{Kind: TokenOp, Sym: ")"},
			},
		},
		{
			name:     "keyed atom",
			lexemes:  []string{"path:/etc"},
			expected: []Token{{Kind: TokenAtom, Key: "path", Value: "/etc"}},
		},
		{
			name:     "bare atom",
			lexemes:  []string{"symlink"},
			expected: []Token{{Kind: TokenAtom, Key: "symlink", Value: ""}},
		},
		{
			name: "digit 6 falls outside the atom key class",
			// baz6 is not [-a-z0-5]+, so the whole lexeme is the key.
			lexemes:  []string{"baz6:qux"},
			expected: []Token{{Kind: TokenAtom, Key: "baz6:qux", Value: ""}},
		},
		{
			name:     "digit 5 is within the atom key class",
			lexemes:  []string{"baz5:qux"},
			expected: []Token{{Kind: TokenAtom, Key: "baz5", Value: "qux"}},
		},
		{
			name:     "value may contain colons",
			lexemes:  []string{"regex:a:b:c"},
			expected: []Token{{Kind: TokenAtom, Key: "regex", Value: "a:b:c"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Annotate(tc.lexemes))
		})
	}
}
