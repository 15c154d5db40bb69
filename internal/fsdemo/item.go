/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fsdemo binds the fql engine to a filesystem universe: items
// are files and directories, generators are path/size/regex/symlink/
// recurse/realpath. It is illustrative, not part of the engine itself
// (spec.md §2's "deliberately out of scope" collaborators) — the
// engine depends only on pkg/fql's Environment/Generator/Item-shaped
// contracts, never on this package.
package fsdemo

// Item is anything fql can hold: a FileItem or a DirItem, keyed by its
// filesystem path. Both are small comparable value types so they work
// directly as fql.Stream[Item]'s generic parameter.
type Item interface {
	Path() string
	isItem()
}

// FileItem is a regular file at Path.
type FileItem struct {
	path string
}

// NewFileItem wraps path as a FileItem with no existence check,
// mirroring generators that construct items from a query value before
// ever touching the filesystem.
func NewFileItem(path string) FileItem { return FileItem{path: path} }

func (f FileItem) Path() string { return f.path }
func (FileItem) isItem()        {}

// DirItem is a directory at Path.
type DirItem struct {
	path string
}

func NewDirItem(path string) DirItem { return DirItem{path: path} }

func (d DirItem) Path() string { return d.path }
func (DirItem) isItem()        {}
