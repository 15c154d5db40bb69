/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fql implements a small boolean filter-query language: queries
// such as `path:/etc and ( size:1024 or size:2048 ) and not symlink` are
// tokenized, parsed into an expression tree, normalized, and then
// lazily evaluated against a caller-supplied universe of items.
//
// The package itself knows nothing about files, YAML, or any other
// concrete domain: it is generic over a comparable Item type and a
// pluggable Environment that resolves atom keys (e.g. "path", "size")
// to Generators. See internal/fsdemo for a filesystem binding.
package fql
