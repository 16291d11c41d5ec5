/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chainguard.dev/repoforge/github"
	"chainguard.dev/repoforge/projtree"
)

// projectConfig is the on-disk shape of a repoforge project definition.
type projectConfig struct {
	// Name identifies the project.
	Name string `yaml:"name" json:"name" jsonschema:"description=Project name,required"`

	// GitHub configures the GitHub automation artifacts.
	GitHub github.Options `yaml:"github,omitempty" json:"github,omitempty" jsonschema:"description=GitHub automation options"`
}

func loadProjectConfig(path string) (*projectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg projectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("config %s: name is required", path)
	}
	return &cfg, nil
}

// buildProject constructs the component tree described by cfg.
func buildProject(cfg *projectConfig) (*projtree.Project, *github.GitHub, error) {
	project := projtree.NewProject(cfg.Name)
	gh, err := github.New(project, cfg.GitHub)
	if err != nil {
		return nil, nil, fmt.Errorf("building github components: %w", err)
	}
	return project, gh, nil
}
