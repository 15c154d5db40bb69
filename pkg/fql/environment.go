/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

import "strings"

// Environment resolves atom keys to Generators and supplies the
// priority table the Normalizer uses to order conjuncts.
type Environment[I comparable] interface {
	// Generator returns the Generator bound to key, or an
	// InvalidGeneratorError if none is registered.
	Generator(key string) (Generator[I], error)

	// Priority returns the evaluation priority of key; implementations
	// should default to 0 for unrecognized keys.
	Priority(key string) int
}

// Generator is a marker interface: a concrete generator must implement
// at least one of Producer or Transformer. The engine type-asserts
// which it needs at evaluation time (generate when source is nil,
// filter otherwise) rather than requiring every generator to implement
// both — the same optional-capability-interface idiom the standard
// library uses for io.ReaderFrom/http.Flusher.
type Generator[I comparable] interface {
	generatorMarker()
}

// Producer generates items with no upstream source (an atom used as
// the start of a pipeline, e.g. "path:/etc").
type Producer[I comparable] interface {
	Generator[I]
	Generate(value string, opts Opts, positive bool) (Stream[I], error)
}

// Transformer filters an upstream source (an atom used downstream of
// another, e.g. "size:1024" filtering whatever "path:/etc" produced).
type Transformer[I comparable] interface {
	Generator[I]
	Filter(source Stream[I], value string, opts Opts, positive bool) (Stream[I], error)
}

// BaseGenerator implements the Generator marker method; embed it in
// concrete generator types so they only need to implement Generate
// and/or Filter.
type BaseGenerator[I comparable] struct{}

func (BaseGenerator[I]) generatorMarker() {}

// Opts holds the bracketed options parsed from a key, e.g.
// "recurse[maxdepth=3,followlinks]" parses to key "recurse" and
// Opts{"maxdepth": "3", "followlinks": "true"}.
type Opts map[string]string

// Bool reports whether a flag-style option is present and truthy.
func (o Opts) Bool(name string) bool {
	return o[name] == "true"
}

// splitKeyOpts splits a raw atom key of the form "key[opt1,opt2=val]"
// into the bare key and its parsed Opts. Keys with no bracket suffix
// return an empty Opts. This bracketed syntax is the should-accept
// extension noted in spec.md §4.5.
func splitKeyOpts(rawKey string) (string, Opts) {
	open := strings.IndexByte(rawKey, '[')
	if open == -1 || !strings.HasSuffix(rawKey, "]") {
		return rawKey, Opts{}
	}
	key := rawKey[:open]
	body := rawKey[open+1 : len(rawKey)-1]
	opts := Opts{}
	if body == "" {
		return key, opts
	}
	for _, part := range strings.Split(body, ",") {
		if eq := strings.IndexByte(part, '='); eq != -1 {
			opts[part[:eq]] = part[eq+1:]
		} else {
			opts[part] = "true"
		}
	}
	return key, opts
}
