// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary parses YAML streams and prints their document trees. It reads
// from the files given as arguments, or from stdin when none are given, and
// renders each document either as an indented outline or as JSON.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.yaml.in/parser"
)

const version = "0.1.0"

type flags struct {
	json      bool
	positions bool
	warnings  bool
	single    bool
	maxDepth  int
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:     "yaml-parse [files...]",
		Short:   "Parse YAML streams and print their document trees",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, f)
		},
	}

	rootCmd.Flags().BoolVar(&f.json, "json", false, "Render documents as JSON instead of an outline")
	rootCmd.Flags().BoolVar(&f.positions, "positions", false, "Include line and column of every node")
	rootCmd.Flags().BoolVar(&f.warnings, "warnings", false, "Print parser warnings to stderr")
	rootCmd.Flags().BoolVar(&f.single, "single", false, "Fail if a stream holds more than one document")
	rootCmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "Override the maximum node nesting depth")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(out, errOut io.Writer, args []string, f flags) error {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return parseStream(out, errOut, "stdin", data, f)
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if err := parseStream(out, errOut, name, data, f); err != nil {
			return err
		}
	}
	return nil
}

func parseStream(out, errOut io.Writer, name string, data []byte, f flags) error {
	opts := []parser.Option{}
	if f.single {
		opts = append(opts, parser.WithSingleDocument())
	}
	if f.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(f.maxDepth))
	}
	if f.warnings {
		opts = append(opts, parser.WithWarningHandler(func(w parser.Warning) {
			fmt.Fprintf(errOut, "%s: %s: warning: %s\n", name, w.Mark, w.Message)
		}))
	}

	docs, err := parser.Parse(data, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for i, doc := range docs {
		if len(docs) > 1 || doc.Explicit {
			fmt.Fprintf(out, "--- # document %d\n", i+1)
		}
		if f.json {
			if err := writeJSON(out, doc.Root); err != nil {
				return err
			}
			fmt.Fprintln(out)
		} else {
			writeOutline(out, doc.Root, 0, f.positions)
		}
	}
	return nil
}
