/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

// DefaultTokenSecret is the name of the repository secret holding the token
// that generated workflows use for mutating operations. The secret is only
// referenced by name here; resolution happens on the GitHub side.
const DefaultTokenSecret = "REPOFORGE_GITHUB_TOKEN"

// Options configures the GitHub orchestrator. The zero value enables the
// default artifact set: workflows, Mergify, pull request lint, and stale
// handling. Switches that default to on are pointers so a config file can
// distinguish "absent" from "explicitly false".
type Options struct {
	// Workflows controls whether workflow file bodies are materialized.
	// Defaults to true. Workflow components are still constructed and
	// registered when false; they just render nothing.
	Workflows *bool `yaml:"workflows,omitempty" json:"workflows,omitempty"`

	// TokenSecret names the repository secret threaded into generated
	// workflows. Defaults to DefaultTokenSecret.
	TokenSecret string `yaml:"tokenSecret,omitempty" json:"tokenSecret,omitempty"`

	// Mergify controls whether a merge-policy component is built.
	// Defaults to true.
	Mergify        *bool          `yaml:"mergify,omitempty" json:"mergify,omitempty"`
	MergifyOptions MergifyOptions `yaml:"mergifyOptions,omitempty" json:"mergifyOptions,omitempty"`

	// PullRequestLint controls whether a pull request lint workflow is
	// built. Defaults to true.
	PullRequestLint        *bool                  `yaml:"pullRequestLint,omitempty" json:"pullRequestLint,omitempty"`
	PullRequestLintOptions PullRequestLintOptions `yaml:"pullRequestLintOptions,omitempty" json:"pullRequestLintOptions,omitempty"`

	// AutoApprove enables automatic PR approval when present. Presence
	// gates construction: an empty options value still enables the
	// feature. This is deliberately asymmetric with the boolean switches.
	AutoApprove *AutoApproveOptions `yaml:"autoApprove,omitempty" json:"autoApprove,omitempty"`

	// Stale controls whether a stale issue/PR handler is built.
	// Defaults to true.
	Stale        *bool        `yaml:"stale,omitempty" json:"stale,omitempty"`
	StaleOptions StaleOptions `yaml:"staleOptions,omitempty" json:"staleOptions,omitempty"`
}

// enabled resolves a default-true switch.
func enabled(v *bool) bool {
	return v == nil || *v
}
