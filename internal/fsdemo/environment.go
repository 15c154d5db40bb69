/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fsdemo

import (
	"github.com/gofql/fql/internal/config"
	"github.com/gofql/fql/pkg/fql"
)

// Environment binds the demo generators to fql.Environment[Item],
// consulting a config.PriorityTable for conjunct ordering.
type Environment struct {
	gens       map[string]fql.Generator[Item]
	priorities *config.PriorityTable
}

// NewEnvironment returns an Environment backed by every generator in
// Generators(). A nil priorities defaults every key to priority 0.
func NewEnvironment(priorities *config.PriorityTable) *Environment {
	return &Environment{gens: Generators(), priorities: priorities}
}

func (e *Environment) Generator(key string) (fql.Generator[Item], error) {
	g, ok := e.gens[key]
	if !ok {
		return nil, &fql.InvalidGeneratorError{Key: key}
	}
	return g, nil
}

func (e *Environment) Priority(key string) int {
	return e.priorities.Priority(key)
}

var _ fql.Environment[Item] = (*Environment)(nil)
