/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command fql runs a filter query against the filesystem demo
// universe, grounded in the original toy-query walkthrough this
// engine was distilled from.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gofql/fql/internal/config"
	"github.com/gofql/fql/internal/fsdemo"
	"github.com/gofql/fql/pkg/fql"
)

// demoQueries are the toy examples run when no query is given on the
// command line.
var demoQueries = []string{
	// Find large log files.
	"path:/var/log and size:1048576-",

	// Find configuration files somewhat related to keyboard.
	"path:/etc and regex:.*keyboard.*",

	// Find non-symlink files in /etc/alternatives.
	"path:/etc/alternatives and not symlink",

	// Dereference symlinks in /etc/alternatives and show only items
	// whose dereferenced path is in /usr/bin.
	"path:/etc/alternatives and recurse and realpath and path:/usr/bin",

	// Find configuration files whose size is one of several specific
	// values.
	"path:/etc and ( size:1024 or size:2048 or size:3072 )",
}

func main() {
	var verbose bool
	var priorityFile string

	root := &cobra.Command{
		Use:   "fql [query ...]",
		Short: "Evaluate filter queries against the filesystem demo universe",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			priorities := config.Default()
			if priorityFile != "" {
				priorities, err = config.Load(priorityFile)
				if err != nil {
					return fmt.Errorf("loading priority file: %w", err)
				}
			}

			queries := args
			if len(queries) == 0 {
				queries = demoQueries
			}

			env := fsdemo.NewEnvironment(priorities)
			for _, query := range queries {
				if err := runQuery(cmd, logger, env, query); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace tokenization")
	root.Flags().StringVar(&priorityFile, "priority-file", "", "YAML file of generator-key priorities")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runQuery(cmd *cobra.Command, logger *zap.Logger, env *fsdemo.Environment, query string) error {
	heading := fmt.Sprintf("Query: %s", query)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("=", len(heading)+1))
	fmt.Fprintln(cmd.OutOrStdout(), heading)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("=", len(heading)+1))

	var opts []fql.TokenizeOption
	opts = append(opts, fql.WithTrace(func(lexeme string) {
		logger.Debug("lexeme", zap.String("query", query), zap.String("lexeme", lexeme))
	}))

	tree, err := fql.Parse(query, opts...)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", query, err)
	}
	tree = fql.Normalize(tree, env.Priority)

	stream, err := fql.Eval[fsdemo.Item](tree, env, nil, true)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", query, err)
	}

	for {
		item, ok, err := stream.Next()
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", query, err)
		}
		if !ok {
			break
		}
		fmt.Fprintln(cmd.OutOrStdout(), item.Path())
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return stream.Close()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
