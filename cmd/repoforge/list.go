/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"chainguard.dev/repoforge/github"
	"chainguard.dev/repoforge/projtree"
)

func newListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the components the config produces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig(configPath)
			if err != nil {
				return err
			}
			project, gh, err := buildProject(cfg)
			if err != nil {
				return err
			}
			return writeComponentTable(cmd.OutOrStdout(), project, gh)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "repoforge.yaml", "path to the project config")
	return cmd
}

func writeComponentTable(w io.Writer, project *projtree.Project, gh *github.GitHub) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Kind", "Detail"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
		}),
	)
	for _, c := range project.Components() {
		detail := ""
		switch v := c.(type) {
		case *github.GitHub:
			detail = fmt.Sprintf("workflows=%t tokenSecret=%s", v.WorkflowsEnabled(), v.TokenSecret())
		case *github.Workflow:
			detail = v.Name()
		case *github.Dependabot:
			detail = v.Ecosystem()
		case *github.AutoApprove:
			detail = "label=" + v.Label()
		}
		if err := table.Append([]string{string(c.Kind()), detail}); err != nil {
			return err
		}
	}
	return table.Render()
}
