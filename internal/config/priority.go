/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads the generator-priority table the Normalizer
// uses to reorder conjuncts (spec.md §4.4): cheaper generators run
// first so expensive ones filter a smaller set.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PriorityTable maps a generator key to its evaluation priority. A nil
// *PriorityTable (or an absent key) defaults to priority 0.
type PriorityTable struct {
	values map[string]int
}

// Load reads a YAML document of the form "key: priority" from path.
func Load(path string) (*PriorityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML document of the form "key: priority".
func Parse(data []byte) (*PriorityTable, error) {
	raw := map[string]int{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &PriorityTable{values: raw}, nil
}

// Priority returns the priority assigned to key, or 0 if unset.
func (t *PriorityTable) Priority(key string) int {
	if t == nil {
		return 0
	}
	return t.values[key]
}

// Default returns the priority table the fsdemo CLI uses when no
// --priority-file is given: path first, then recurse and realpath, then
// the recursing filters symlink, size and regex (symlink Lstats and
// size Stats every recursed file; regex matches each recursed path).
func Default() *PriorityTable {
	return &PriorityTable{values: map[string]int{
		"path":     0,
		"recurse":  1,
		"realpath": 2,
		"symlink":  3,
		"size":     4,
		"regex":    5,
	}}
}
