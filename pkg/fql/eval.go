/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

// Eval evaluates a normalized expression tree against env, pulling from
// source (nil means "generate from nothing") in the given polarity. It
// implements the De Morgan rewrite table from spec.md §4.5: "not" is
// never materialized as a complement, it is pushed to leaves by
// flipping positive at each operator.
func Eval[I comparable](n *Node, env Environment[I], source Stream[I], positive bool) (Stream[I], error) {
	switch n.Kind {
	case NodeAtom:
		return evalAtom(n, env, source, positive)
	default:
		return evalOperator(n, env, source, positive)
	}
}

func evalAtom[I comparable](n *Node, env Environment[I], source Stream[I], positive bool) (Stream[I], error) {
	key, opts := splitKeyOpts(n.Key)
	gen, err := env.Generator(key)
	if err != nil {
		return nil, err
	}

	if source == nil {
		producer, ok := gen.(Producer[I])
		if !ok {
			return nil, &NotSupportedError{Key: key, Mode: "generation"}
		}
		stream, err := producer.Generate(n.Value, opts, positive)
		if err != nil {
			return nil, &GeneratorError{Key: key, Err: err}
		}
		return stream, nil
	}

	transformer, ok := gen.(Transformer[I])
	if !ok {
		return nil, &NotSupportedError{Key: key, Mode: "filtering"}
	}
	stream, err := transformer.Filter(source, n.Value, opts, positive)
	if err != nil {
		return nil, &GeneratorError{Key: key, Err: err}
	}
	return stream, nil
}

func evalOperator[I comparable](n *Node, env Environment[I], source Stream[I], positive bool) (Stream[I], error) {
	switch n.Op {
	case OpRoot:
		return Eval(n.Children[0], env, source, positive)

	case OpNot:
		if source == nil {
			return nil, &NotSupportedError{Key: "not", Mode: "negation of a generator with no source"}
		}
		return Eval(n.Children[0], env, source, !positive)

	case OpAnd, OpPipe:
		a, b := n.Children[0], n.Children[1]
		if positive {
			return intersection(env, source, a, true, b, true)
		}
		return union(env, source, a, false, b, false)

	case OpOr:
		a, b := n.Children[0], n.Children[1]
		if positive {
			return union(env, source, a, true, b, true)
		}
		return intersection(env, source, a, false, b, false)

	case OpSubtract:
		a, b := n.Children[0], n.Children[1]
		if positive {
			return intersection(env, source, a, true, b, false)
		}
		return union(env, source, a, false, b, true)

	default:
		return nil, syntaxErrorf("unknown operator %v", n.Op)
	}
}

// intersection pipes a's output into b: b filters whatever a produced.
func intersection[I comparable](env Environment[I], source Stream[I], a *Node, posA bool, b *Node, posB bool) (Stream[I], error) {
	streamA, err := Eval(a, env, source, posA)
	if err != nil {
		return nil, err
	}
	streamB, err := Eval(b, env, streamA, posB)
	if err != nil {
		return nil, err
	}
	return streamB, nil
}

// union evaluates a and b independently over the same source and
// yields a's items followed by b's items not already seen. When source
// is non-nil it is drained once and replayed to each branch, since a
// Stream is single-pass and both branches need their own full pass.
func union[I comparable](env Environment[I], source Stream[I], a *Node, posA bool, b *Node, posB bool) (Stream[I], error) {
	if source == nil {
		streamA, err := Eval(a, env, nil, posA)
		if err != nil {
			return nil, err
		}
		streamB, err := Eval(b, env, nil, posB)
		if err != nil {
			return nil, err
		}
		return newUnionStream(streamA, streamB), nil
	}

	buffered, err := Drain(source)
	if err != nil {
		return nil, err
	}
	streamA, err := Eval(a, env, NewSliceStream(buffered), posA)
	if err != nil {
		return nil, err
	}
	streamB, err := Eval(b, env, NewSliceStream(buffered), posB)
	if err != nil {
		return nil, err
	}
	return newUnionStream(streamA, streamB), nil
}
