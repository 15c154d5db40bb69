/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import (
	"os"
	"path/filepath"

	"github.com/gofql/fql/pkg/fql"
)

// dirFrame is one level of a depth-first directory walk: the entries
// of a single directory and how far into them the walk has advanced.
type dirFrame struct {
	path    string
	entries []os.DirEntry
	idx     int
}

// fileWalker is a pull-based, single-threaded recursive file walk: a
// stack of dirFrames, advanced one entry at a time. It mirrors the
// lexer's push/pop stack of suspended states rather than a
// goroutine-backed channel, since a directory listing is eagerly
// available and doesn't need a second thread to produce values lazily.
type fileWalker struct {
	stack []*dirFrame
}

func newFileWalker(root string) *fileWalker {
	w := &fileWalker{}
	w.push(root)
	return w
}

func (w *fileWalker) push(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	w.stack = append(w.stack, &dirFrame{path: path, entries: entries})
	return nil
}

// Next returns the next file under the walk root in depth-first order.
// Directories are descended into but never themselves yielded, which
// is recurse_file_items' contract: files only.
func (w *fileWalker) Next() (Item, bool, error) {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if top.idx >= len(top.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		entry := top.entries[top.idx]
		top.idx++
		full := filepath.Join(top.path, entry.Name())

		if entry.IsDir() {
			if err := w.push(full); err != nil {
				return nil, false, err
			}
			continue
		}
		return NewFileItem(full), true, nil
	}
	return nil, false, nil
}

func (w *fileWalker) Close() error {
	w.stack = nil
	return nil
}

var _ fql.Stream[Item] = (*fileWalker)(nil)

// RecurseFileItems returns every file reachable from item: item itself
// if it is a file, every file under it if it is a directory.
func RecurseFileItems(item Item) fql.Stream[Item] {
	switch v := item.(type) {
	case FileItem:
		return fql.NewSliceStream([]Item{v})
	case DirItem:
		return newFileWalker(v.Path())
	default:
		return fql.Empty[Item]()
	}
}
