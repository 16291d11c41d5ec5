/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"chainguard.dev/repoforge/synth"
)

type synthEnv struct {
	OutDir string `env:"REPOFORGE_OUT_DIR,default=."`
}

func newSynthCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Build the component tree and write the rendered artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var env synthEnv
			if err := envconfig.Process(ctx, &env); err != nil {
				return fmt.Errorf("processing environment: %w", err)
			}
			if outDir == "" {
				outDir = env.OutDir
			}

			cfg, err := loadProjectConfig(configPath)
			if err != nil {
				return err
			}
			project, _, err := buildProject(cfg)
			if err != nil {
				return err
			}

			files, err := synth.Synthesize(ctx, project, synth.Options{
				OutDir: outDir,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			log := clog.FromContext(ctx)
			log.With("project", cfg.Name).With("files", len(files)).Info("Synthesis complete")
			if dryRun {
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "repoforge.yaml", "path to the project config")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default $REPOFORGE_OUT_DIR or .)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the planned files without writing")
	return cmd
}
