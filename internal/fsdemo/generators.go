/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofql/fql/pkg/fql"
)

// PathGenerator implements "path:<dir>". As a Producer it seeds a
// query with a single DirItem rooted at dir; as a Transformer it keeps
// items whose path is dir itself or lies under it.
type PathGenerator struct {
	fql.BaseGenerator[Item]
}

func (PathGenerator) Generate(value string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	if !positive {
		return nil, &fql.NotSupportedError{Key: "path", Mode: "negative generation"}
	}
	return fql.NewSliceStream([]Item{NewDirItem(value)}), nil
}

func (PathGenerator) Filter(source fql.Stream[Item], value string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	dir := filepath.Clean(value)
	return newItemFilterStream(source, func(item Item) (bool, error) {
		itemPath := filepath.Clean(item.Path())
		match := itemPath == dir || strings.HasPrefix(itemPath, dir+string(filepath.Separator))
		return match == positive, nil
	}), nil
}

// SizeFilter implements "size:<n>", "size:<min>-<max>", "size:<min>-"
// and "size:-<max>", recursing into directories to test every file
// underneath against the byte-size range.
type SizeFilter struct {
	fql.BaseGenerator[Item]
}

func (SizeFilter) Filter(source fql.Stream[Item], value string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	minSize, maxSize, err := parseSizeRange(value)
	if err != nil {
		return nil, err
	}
	return newRecursingFilterStream(source, func(item Item) (bool, error) {
		info, err := os.Stat(item.Path())
		if err != nil {
			return false, err
		}
		size := info.Size()
		match := (minSize == nil || *minSize <= size) && (maxSize == nil || size <= *maxSize)
		return match == positive, nil
	}), nil
}

func parseSizeRange(value string) (min, max *int64, err error) {
	if !strings.Contains(value, "-") {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid size specification: %s", value)
		}
		return &n, &n, nil
	}
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid size specification: %s", value)
	}
	if parts[0] != "" {
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid size specification: %s", value)
		}
		min = &n
	}
	if parts[1] != "" {
		n, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid size specification: %s", value)
		}
		max = &n
	}
	return min, max, nil
}

// RegexFilter implements "regex:<pattern>", recursing into directories
// and keeping files whose path matches pattern.
type RegexFilter struct {
	fql.BaseGenerator[Item]
}

func (RegexFilter) Filter(source fql.Stream[Item], value string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	re, err := regexp.Compile(value)
	if err != nil {
		return nil, err
	}
	return newRecursingFilterStream(source, func(item Item) (bool, error) {
		return re.MatchString(item.Path()) == positive, nil
	}), nil
}

// SymlinkFilter implements "symlink", recursing into directories and
// keeping files that are themselves symbolic links.
type SymlinkFilter struct {
	fql.BaseGenerator[Item]
}

func (SymlinkFilter) Filter(source fql.Stream[Item], _ string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	return newRecursingFilterStream(source, func(item Item) (bool, error) {
		info, err := os.Lstat(item.Path())
		if err != nil {
			return false, err
		}
		return (info.Mode()&os.ModeSymlink != 0) == positive, nil
	}), nil
}

// RecurseFilter implements "recurse": every directory in the source is
// replaced by every file beneath it; files pass through unchanged.
// Negative filtering has no meaning for a pure expansion and is
// rejected.
type RecurseFilter struct {
	fql.BaseGenerator[Item]
}

func (RecurseFilter) Filter(source fql.Stream[Item], _ string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	if !positive {
		return nil, &fql.NotSupportedError{Key: "recurse", Mode: "negative filtering"}
	}
	return newExpandingStream(source, RecurseFileItems), nil
}

// RealpathFilter implements "realpath": every item is replaced by the
// item at its fully dereferenced path. Negative filtering is rejected
// for the same reason as RecurseFilter.
type RealpathFilter struct {
	fql.BaseGenerator[Item]
}

func (RealpathFilter) Filter(source fql.Stream[Item], _ string, _ fql.Opts, positive bool) (fql.Stream[Item], error) {
	if !positive {
		return nil, &fql.NotSupportedError{Key: "realpath", Mode: "negative filtering"}
	}
	return newMappingStream(source, func(item Item) (Item, error) {
		real, err := filepath.EvalSymlinks(item.Path())
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(real)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return NewDirItem(real), nil
		}
		return NewFileItem(real), nil
	}), nil
}

// Generators returns every demo generator, keyed the same way
// Environment binds them.
func Generators() map[string]fql.Generator[Item] {
	return map[string]fql.Generator[Item]{
		"path":     PathGenerator{},
		"size":     SizeFilter{},
		"regex":    RegexFilter{},
		"symlink":  SymlinkFilter{},
		"recurse":  RecurseFilter{},
		"realpath": RealpathFilter{},
	}
}
