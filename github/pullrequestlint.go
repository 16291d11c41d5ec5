/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"chainguard.dev/repoforge/projtree"
)

// KindPullRequestLint tags the pull-request-lint component in the project
// tree.
const KindPullRequestLint projtree.Kind = "pull-request-lint"

// SemanticTitleOptions tunes the conventional-commit title check.
type SemanticTitleOptions struct {
	// Types lists the accepted commit types. Defaults to feat, fix, chore.
	Types []string `yaml:"types,omitempty" json:"types,omitempty"`

	// RequireScope requires a scope on every title, e.g. "feat(api): ...".
	RequireScope bool `yaml:"requireScope,omitempty" json:"requireScope,omitempty"`
}

// PullRequestLintOptions configures the pull request lint workflow.
type PullRequestLintOptions struct {
	// SemanticTitle validates PR titles against conventional commits.
	// Defaults to true.
	SemanticTitle        *bool                `yaml:"semanticTitle,omitempty" json:"semanticTitle,omitempty"`
	SemanticTitleOptions SemanticTitleOptions `yaml:"semanticTitleOptions,omitempty" json:"semanticTitleOptions,omitempty"`
}

// PullRequestLint renders a workflow that validates pull request metadata.
type PullRequestLint struct {
	active bool

	semanticTitle bool
	types         []string
	requireScope  bool
}

// NewPullRequestLint builds the lint component. Accepted types must be
// non-empty tokens.
func NewPullRequestLint(opts PullRequestLintOptions) (*PullRequestLint, error) {
	types := opts.SemanticTitleOptions.Types
	if len(types) == 0 {
		types = []string{"feat", "fix", "chore"}
	}
	for _, t := range types {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("semantic title types must be non-empty, got %q", t)
		}
	}
	return &PullRequestLint{
		semanticTitle: enabled(opts.SemanticTitle),
		types:         append([]string(nil), types...),
		requireScope:  opts.SemanticTitleOptions.RequireScope,
	}, nil
}

// Kind implements projtree.Component.
func (l *PullRequestLint) Kind() projtree.Kind { return KindPullRequestLint }

// Files implements projtree.FileProducer. Nothing is rendered when the
// orchestrator's workflows switch is off or every check is disabled.
func (l *PullRequestLint) Files() ([]projtree.File, error) {
	if !l.active || !l.semanticTitle {
		return nil, nil
	}
	with := map[string]any{
		"types": strings.Join(l.types, "\n"),
	}
	if l.requireScope {
		with["requireScope"] = "true"
	}
	doc := workflowDoc{
		Name: "pull-request-lint",
		On: map[string]any{
			"pull_request_target": map[string]any{
				"types": []string{"labeled", "opened", "synchronize", "reopened", "ready_for_review", "edited"},
			},
		},
		Jobs: map[string]Job{
			"validate": {
				RunsOn:      "ubuntu-latest",
				Permissions: map[string]string{"pull-requests": "write"},
				Steps: []Step{{
					Uses: "amannn/action-semantic-pull-request@v5",
					With: with,
					Env: map[string]string{
						"GITHUB_TOKEN": "${{ secrets.GITHUB_TOKEN }}",
					},
				}},
			},
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling pull-request-lint workflow: %w", err)
	}
	return []projtree.File{{
		Path:    ".github/workflows/pull-request-lint.yml",
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}
