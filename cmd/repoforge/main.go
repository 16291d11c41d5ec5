/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the repoforge CLI, which builds a project's
// component tree from a yaml config and renders the resulting artifacts.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repoforge",
	Short: "Scaffold GitHub repository automation for a project",
	Long: `repoforge reads a declarative project config, decides which
repository-automation artifacts (merge policy, stale handling, pull request
lint, auto approval, workflows) the project should carry, and renders them.`,
	// Errors are printed by us; suppress cobra's usage dump on failure.
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSynthCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSchemaCmd())
}
