/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

import "fmt"

// SyntaxError reports a problem tokenizing or parsing a query: unclosed
// quotes, an invalid escape, an extra closing parenthesis, or an
// operator missing one of its operands.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("fql: syntax error: %s", e.Msg)
}

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidGeneratorError is returned when a query refers to an atom key
// for which the Environment has no Generator.
type InvalidGeneratorError struct {
	Key string
}

func (e *InvalidGeneratorError) Error() string {
	return fmt.Sprintf("fql: invalid generator %q", e.Key)
}

// NotSupportedError is returned when a Generator is asked to operate in
// a mode it does not support: generation without a source, filtering
// with one, or negative polarity it declines to evaluate.
type NotSupportedError struct {
	Key  string
	Mode string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("fql: generator %q does not support %s", e.Key, e.Mode)
}

// GeneratorError wraps an error raised from within a Generator's
// Generate or Filter implementation (I/O failure, invalid regex, ...),
// recording which generator key produced it.
type GeneratorError struct {
	Key string
	Err error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("fql: generator %q: %v", e.Key, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}
