/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gofql/fql/pkg/fql"
	"github.com/stretchr/testify/require"
)

// setupTree builds:
//
//	root/a.txt      5 bytes
//	root/sub/b.log  0 bytes
//	root/link       symlink -> root/a.txt
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.log"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "link")))
	return root
}

func paths(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path()
	}
	sort.Strings(out)
	return out
}

func drainItems(t *testing.T, s fql.Stream[Item]) []Item {
	t.Helper()
	items, err := fql.Drain(s)
	require.NoError(t, err)
	return items
}

func TestRecurseFileItemsOverDirectory(t *testing.T) {
	root := setupTree(t)
	items := drainItems(t, RecurseFileItems(NewDirItem(root)))
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "link"),
		filepath.Join(root, "sub", "b.log"),
	}, paths(items))
}

func TestRecurseFileItemsOverFile(t *testing.T) {
	root := setupTree(t)
	items := drainItems(t, RecurseFileItems(NewFileItem(filepath.Join(root, "a.txt"))))
	require.Equal(t, []string{filepath.Join(root, "a.txt")}, paths(items))
}

func TestPathGeneratorGenerate(t *testing.T) {
	g := PathGenerator{}
	s, err := g.Generate("/tmp/x", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Len(t, items, 1)
	require.Equal(t, "/tmp/x", items[0].Path())

	_, err = g.Generate("/tmp/x", nil, false)
	require.Error(t, err)
	var notSupported *fql.NotSupportedError
	require.ErrorAs(t, err, &notSupported)
}

func TestPathGeneratorFilter(t *testing.T) {
	root := setupTree(t)
	g := PathGenerator{}
	source := fql.NewSliceStream([]Item{
		NewFileItem(filepath.Join(root, "a.txt")),
		NewFileItem("/elsewhere/y.txt"),
	})
	s, err := g.Filter(source, root, nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{filepath.Join(root, "a.txt")}, paths(items))
}

func TestSizeFilterExact(t *testing.T) {
	root := setupTree(t)
	g := SizeFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, "5", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	// os.Stat follows symlinks, so "link" (-> a.txt, 5 bytes) matches
	// alongside a.txt itself.
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "link"),
	}, paths(items))
}

func TestSizeFilterOpenRange(t *testing.T) {
	root := setupTree(t)
	g := SizeFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, "0-", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "link"),
		filepath.Join(root, "sub", "b.log"),
	}, paths(items))
}

func TestSizeFilterInvalidSpec(t *testing.T) {
	g := SizeFilter{}
	_, err := g.Filter(fql.Empty[Item](), "not-a-number", nil, true)
	require.Error(t, err)
}

func TestRegexFilter(t *testing.T) {
	root := setupTree(t)
	g := RegexFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, `\.log$`, nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{filepath.Join(root, "sub", "b.log")}, paths(items))
}

func TestSymlinkFilter(t *testing.T) {
	root := setupTree(t)
	g := SymlinkFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, "", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{filepath.Join(root, "link")}, paths(items))
}

func TestSymlinkFilterNegative(t *testing.T) {
	root := setupTree(t)
	g := SymlinkFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, "", nil, false)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.log"),
	}, paths(items))
}

func TestRecurseFilter(t *testing.T) {
	root := setupTree(t)
	g := RecurseFilter{}
	source := fql.NewSliceStream([]Item{NewDirItem(root)})
	s, err := g.Filter(source, "", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "link"),
		filepath.Join(root, "sub", "b.log"),
	}, paths(items))

	_, err = g.Filter(source, "", nil, false)
	require.Error(t, err)
}

func TestRealpathFilter(t *testing.T) {
	root := setupTree(t)
	g := RealpathFilter{}
	source := fql.NewSliceStream([]Item{NewFileItem(filepath.Join(root, "link"))})
	s, err := g.Filter(source, "", nil, true)
	require.NoError(t, err)
	items := drainItems(t, s)
	require.Equal(t, []string{filepath.Join(root, "a.txt")}, paths(items))

	_, err = g.Filter(source, "", nil, false)
	require.Error(t, err)
}
