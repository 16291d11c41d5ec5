/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"chainguard.dev/repoforge/projtree"
)

// KindWorkflow tags workflow components in the project tree.
const KindWorkflow projtree.Kind = "workflow"

// generatedHeader is prepended to every rendered file so hand edits are
// flagged in review.
const generatedHeader = "# Generated by repoforge. Do not edit by hand.\n"

// Workflow is a GitHub Actions workflow component. Its name is the identity
// key in the orchestrator's workflow registry; the tree itself never enforces
// name uniqueness.
type Workflow struct {
	name        string
	tokenSecret string
	active      bool

	triggers map[string]any
	jobs     map[string]Job
}

// Job is a single workflow job.
type Job struct {
	RunsOn      string            `yaml:"runs-on" json:"runs-on"`
	Permissions map[string]string `yaml:"permissions,omitempty" json:"permissions,omitempty"`
	If          string            `yaml:"if,omitempty" json:"if,omitempty"`
	Steps       []Step            `yaml:"steps" json:"steps"`
}

// Step is a single job step. Exactly one of Uses or Run is expected; the
// rendered workflow is left to GitHub to validate beyond that.
type Step struct {
	Name string            `yaml:"name,omitempty" json:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty" json:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty" json:"run,omitempty"`
	With map[string]any    `yaml:"with,omitempty" json:"with,omitempty"`
	Env  map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

func newWorkflow(name, tokenSecret string, active bool) *Workflow {
	return &Workflow{
		name:        name,
		tokenSecret: tokenSecret,
		active:      active,
		triggers:    map[string]any{},
		jobs:        map[string]Job{},
	}
}

// Kind implements projtree.Component.
func (w *Workflow) Kind() projtree.Kind { return KindWorkflow }

// Name returns the workflow's registry name.
func (w *Workflow) Name() string { return w.name }

// TokenSecret returns the secret name this workflow references for mutating
// operations, inherited from the orchestrator at construction.
func (w *Workflow) TokenSecret() string { return w.tokenSecret }

// On registers a trigger for the given event. A nil config renders the bare
// event. Registering the same event again replaces the earlier config.
func (w *Workflow) On(event string, config any) {
	w.triggers[event] = config
}

// AddJob registers a job under the given identifier, replacing any job
// already registered under it.
func (w *Workflow) AddJob(id string, job Job) {
	w.jobs[id] = job
}

type workflowDoc struct {
	Name string         `yaml:"name"`
	On   map[string]any `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Files implements projtree.FileProducer. The body is only materialized when
// the orchestrator's workflows switch was on at construction.
func (w *Workflow) Files() ([]projtree.File, error) {
	if !w.active {
		return nil, nil
	}
	data, err := yaml.Marshal(workflowDoc{Name: w.name, On: w.triggers, Jobs: w.jobs})
	if err != nil {
		return nil, fmt.Errorf("marshaling workflow %q: %w", w.name, err)
	}
	return []projtree.File{{
		Path:    path.Join(".github", "workflows", w.name+".yml"),
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}
