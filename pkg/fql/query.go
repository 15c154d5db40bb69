/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

// Parse runs the full tokenize -> annotate -> build pipeline over a
// query string, returning an expression tree rooted at an implicit
// Root node. Callers that want priority-ordered conjuncts should pass
// the result through Normalize before Eval.
func Parse(query string, opts ...TokenizeOption) (*Node, error) {
	lexemes, err := Tokenize(query, opts...)
	if err != nil {
		return nil, err
	}
	tokens := Annotate(lexemes)
	return Build(tokens)
}

// Run parses, normalizes, and evaluates query against env in positive
// polarity starting from no source, the shape of every entry point in
// spec.md §8's scenario table ("a query string is consumed once").
func Run[I comparable](query string, env Environment[I]) (Stream[I], error) {
	tree, err := Parse(query)
	if err != nil {
		return nil, err
	}
	tree = Normalize(tree, env.Priority)
	return Eval(tree, env, nil, true)
}
