/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemEqualityIsByPathAndKind(t *testing.T) {
	var a, b Item = NewFileItem("/x"), NewFileItem("/x")
	require.Equal(t, a, b)
	require.True(t, a == b)

	var dir Item = NewDirItem("/x")
	require.NotEqual(t, a, dir)
}
