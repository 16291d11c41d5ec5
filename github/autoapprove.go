/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"chainguard.dev/repoforge/projtree"
)

// KindAutoApprove tags the auto-approval component in the project tree.
const KindAutoApprove projtree.Kind = "auto-approve"

// AutoApproveOptions configures automatic PR approval. The zero value
// approves PRs labeled "auto-approve" using the GITHUB_TOKEN secret, with no
// author restriction.
type AutoApproveOptions struct {
	// Label gates approval. Defaults to "auto-approve".
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	// AllowedUsernames restricts approval to PRs authored by these users.
	// Empty means any author.
	AllowedUsernames []string `yaml:"allowedUsernames,omitempty" json:"allowedUsernames,omitempty"`

	// Secret names the repository secret whose token performs the
	// approval. Defaults to "GITHUB_TOKEN".
	Secret string `yaml:"secret,omitempty" json:"secret,omitempty"`
}

// AutoApprove renders a workflow that approves labeled pull requests.
type AutoApprove struct {
	active bool

	label   string
	allowed []string
	secret  string
}

// NewAutoApprove builds the auto-approval component with defaults applied.
func NewAutoApprove(opts AutoApproveOptions) *AutoApprove {
	a := &AutoApprove{
		label:   opts.Label,
		allowed: append([]string(nil), opts.AllowedUsernames...),
		secret:  opts.Secret,
	}
	if a.label == "" {
		a.label = "auto-approve"
	}
	if a.secret == "" {
		a.secret = "GITHUB_TOKEN"
	}
	return a
}

// Kind implements projtree.Component.
func (a *AutoApprove) Kind() projtree.Kind { return KindAutoApprove }

// Label returns the gating label.
func (a *AutoApprove) Label() string { return a.label }

// condition builds the job-level if expression.
func (a *AutoApprove) condition() string {
	cond := fmt.Sprintf("contains(github.event.pull_request.labels.*.name, '%s')", a.label)
	if len(a.allowed) == 0 {
		return cond
	}
	authors := ""
	for i, u := range a.allowed {
		if i > 0 {
			authors += " || "
		}
		authors += fmt.Sprintf("github.event.pull_request.user.login == '%s'", u)
	}
	return cond + " && (" + authors + ")"
}

// Files implements projtree.FileProducer. Nothing is rendered when the
// orchestrator's workflows switch is off.
func (a *AutoApprove) Files() ([]projtree.File, error) {
	if !a.active {
		return nil, nil
	}
	doc := workflowDoc{
		Name: "auto-approve",
		On: map[string]any{
			"pull_request_target": map[string]any{
				"types": []string{"labeled", "opened", "synchronize", "reopened", "ready_for_review"},
			},
		},
		Jobs: map[string]Job{
			"approve": {
				RunsOn:      "ubuntu-latest",
				Permissions: map[string]string{"pull-requests": "write"},
				If:          a.condition(),
				Steps: []Step{{
					Uses: "hmarr/auto-approve-action@v4",
					With: map[string]any{
						"github-token": fmt.Sprintf("${{ secrets.%s }}", a.secret),
					},
				}},
			},
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling auto-approve workflow: %w", err)
	}
	return []projtree.File{{
		Path:    ".github/workflows/auto-approve.yml",
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}
