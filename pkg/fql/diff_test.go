/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// requireSameItems compares two sorted item lists line-by-line, printing
// a diffmatchpatch diff on mismatch instead of testify's default
// slice-repr dump, mirroring the teacher's own example_test.go
// diff-on-failure pattern.
func requireSameItems(t *testing.T, want, got []string) {
	t.Helper()
	w := strings.Join(want, "\n")
	g := strings.Join(got, "\n")
	if w == g {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(w, g, false)
	t.Fatalf("item sets differ (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}
