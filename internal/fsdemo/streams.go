/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import "github.com/gofql/fql/pkg/fql"

// filterStream lazily keeps items from upstream matching keep. It is
// fsdemo's own copy of fql's internal filter combinator: that one is
// unexported, and this package's predicates are Item-specific.
type filterStream struct {
	upstream fql.Stream[Item]
	keep     func(Item) (bool, error)
}

func newItemFilterStream(upstream fql.Stream[Item], keep func(Item) (bool, error)) fql.Stream[Item] {
	return &filterStream{upstream: upstream, keep: keep}
}

func (s *filterStream) Next() (Item, bool, error) {
	for {
		item, ok, err := s.upstream.Next()
		if err != nil || !ok {
			return nil, false, err
		}
		keep, err := s.keep(item)
		if err != nil {
			return nil, false, err
		}
		if keep {
			return item, true, nil
		}
	}
}

func (s *filterStream) Close() error { return s.upstream.Close() }

// mapStream lazily transforms each item from upstream with fn.
type mapStream struct {
	upstream fql.Stream[Item]
	fn       func(Item) (Item, error)
}

func newMappingStream(upstream fql.Stream[Item], fn func(Item) (Item, error)) fql.Stream[Item] {
	return &mapStream{upstream: upstream, fn: fn}
}

func (s *mapStream) Next() (Item, bool, error) {
	item, ok, err := s.upstream.Next()
	if err != nil || !ok {
		return nil, false, err
	}
	out, err := s.fn(item)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s *mapStream) Close() error { return s.upstream.Close() }

// expandingStream replaces each upstream item with every item produced
// by expand(item), in order: a flat-map over Streams.
type expandingStream struct {
	upstream fql.Stream[Item]
	expand   func(Item) fql.Stream[Item]
	current  fql.Stream[Item]
}

func newExpandingStream(upstream fql.Stream[Item], expand func(Item) fql.Stream[Item]) fql.Stream[Item] {
	return &expandingStream{upstream: upstream, expand: expand}
}

func (s *expandingStream) Next() (Item, bool, error) {
	for {
		if s.current != nil {
			item, ok, err := s.current.Next()
			if err != nil {
				return nil, false, err
			}
			if ok {
				return item, true, nil
			}
			if err := s.current.Close(); err != nil {
				return nil, false, err
			}
			s.current = nil
		}

		item, ok, err := s.upstream.Next()
		if err != nil || !ok {
			return nil, false, err
		}
		s.current = s.expand(item)
	}
}

func (s *expandingStream) Close() error {
	if s.current != nil {
		if err := s.current.Close(); err != nil {
			return err
		}
	}
	return s.upstream.Close()
}

// newRecursingFilterStream recurses every upstream item (a directory
// expands to its files, a file passes through as itself) and keeps
// only the recursed files matching keep. SizeFilter, RegexFilter, and
// SymlinkFilter all share this shape.
func newRecursingFilterStream(upstream fql.Stream[Item], keep func(Item) (bool, error)) fql.Stream[Item] {
	return newExpandingStream(upstream, func(item Item) fql.Stream[Item] {
		return newItemFilterStream(RecurseFileItems(item), keep)
	})
}
