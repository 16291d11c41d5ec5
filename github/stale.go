/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"chainguard.dev/repoforge/projtree"
)

// KindStale tags the stale-handler component in the project tree.
const KindStale projtree.Kind = "stale"

// StaleBehavior configures stale handling for one item type (issues or pull
// requests).
type StaleBehavior struct {
	// Enabled defaults to true.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// DaysBeforeStale is how long an item may sit without activity before
	// it is marked stale. Zero means "use the default".
	DaysBeforeStale int `yaml:"daysBeforeStale,omitempty" json:"daysBeforeStale,omitempty"`

	// DaysBeforeClose is how long after marking an item stays open. Zero
	// means "use the default".
	DaysBeforeClose int `yaml:"daysBeforeClose,omitempty" json:"daysBeforeClose,omitempty"`

	// StaleMessage overrides the comment posted when marking.
	StaleMessage string `yaml:"staleMessage,omitempty" json:"staleMessage,omitempty"`

	// ExemptLabels lists labels that protect an item from staleness.
	ExemptLabels []string `yaml:"exemptLabels,omitempty" json:"exemptLabels,omitempty"`
}

// StaleOptions configures the stale handler per item type.
type StaleOptions struct {
	Issues       StaleBehavior `yaml:"issues,omitempty" json:"issues,omitempty"`
	PullRequests StaleBehavior `yaml:"pullRequests,omitempty" json:"pullRequests,omitempty"`
}

type staleBehavior struct {
	enabled      bool
	daysStale    int
	daysClose    int
	staleMessage string
	exemptLabels []string
}

// Stale renders a scheduled workflow that marks and closes inactive issues
// and pull requests.
type Stale struct {
	active bool

	issues       staleBehavior
	pullRequests staleBehavior
}

// NewStale builds the stale-handler component. Day counts must not be
// negative.
func NewStale(opts StaleOptions) (*Stale, error) {
	issues, err := resolveStaleBehavior(opts.Issues, 60, 7, "issue")
	if err != nil {
		return nil, err
	}
	prs, err := resolveStaleBehavior(opts.PullRequests, 30, 7, "pull request")
	if err != nil {
		return nil, err
	}
	return &Stale{issues: issues, pullRequests: prs}, nil
}

func resolveStaleBehavior(b StaleBehavior, defaultStale, defaultClose int, what string) (staleBehavior, error) {
	if b.DaysBeforeStale < 0 {
		return staleBehavior{}, fmt.Errorf("%s daysBeforeStale must not be negative, got %d", what, b.DaysBeforeStale)
	}
	if b.DaysBeforeClose < 0 {
		return staleBehavior{}, fmt.Errorf("%s daysBeforeClose must not be negative, got %d", what, b.DaysBeforeClose)
	}
	out := staleBehavior{
		enabled:      enabled(b.Enabled),
		daysStale:    b.DaysBeforeStale,
		daysClose:    b.DaysBeforeClose,
		staleMessage: b.StaleMessage,
		exemptLabels: append([]string(nil), b.ExemptLabels...),
	}
	if out.daysStale == 0 {
		out.daysStale = defaultStale
	}
	if out.daysClose == 0 {
		out.daysClose = defaultClose
	}
	if out.staleMessage == "" {
		out.staleMessage = fmt.Sprintf(
			"This %s has not seen activity in %d days and will be closed in %d days unless it is updated.",
			what, out.daysStale, out.daysClose)
	}
	if out.exemptLabels == nil {
		out.exemptLabels = []string{"backlog"}
	}
	return out, nil
}

// Kind implements projtree.Component.
func (s *Stale) Kind() projtree.Kind { return KindStale }

// Files implements projtree.FileProducer. Nothing is rendered when the
// orchestrator's workflows switch is off, or when both item types are
// disabled.
func (s *Stale) Files() ([]projtree.File, error) {
	if !s.active || (!s.issues.enabled && !s.pullRequests.enabled) {
		return nil, nil
	}

	with := map[string]any{}
	if s.issues.enabled {
		with["days-before-issue-stale"] = strconv.Itoa(s.issues.daysStale)
		with["days-before-issue-close"] = strconv.Itoa(s.issues.daysClose)
		with["stale-issue-message"] = s.issues.staleMessage
		with["exempt-issue-labels"] = joinLabels(s.issues.exemptLabels)
	} else {
		with["days-before-issue-stale"] = "-1"
	}
	if s.pullRequests.enabled {
		with["days-before-pr-stale"] = strconv.Itoa(s.pullRequests.daysStale)
		with["days-before-pr-close"] = strconv.Itoa(s.pullRequests.daysClose)
		with["stale-pr-message"] = s.pullRequests.staleMessage
		with["exempt-pr-labels"] = joinLabels(s.pullRequests.exemptLabels)
	} else {
		with["days-before-pr-stale"] = "-1"
	}

	doc := workflowDoc{
		Name: "stale",
		On: map[string]any{
			"schedule": []map[string]string{{"cron": "0 1 * * *"}},
		},
		Jobs: map[string]Job{
			"stale": {
				RunsOn:      "ubuntu-latest",
				Permissions: map[string]string{"issues": "write", "pull-requests": "write"},
				Steps:       []Step{{Uses: "actions/stale@v9", With: with}},
			},
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling stale workflow: %w", err)
	}
	return []projtree.File{{
		Path:    ".github/workflows/stale.yml",
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}

// joinLabels renders a label list the way actions/stale expects it.
func joinLabels(labels []string) string {
	return strings.Join(labels, ",")
}
