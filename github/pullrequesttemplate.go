/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"strings"

	"chainguard.dev/repoforge/projtree"
)

// KindPullRequestTemplate tags pull-request-template components in the
// project tree.
const KindPullRequestTemplate projtree.Kind = "pull-request-template"

// PullRequestTemplate renders .github/pull_request_template.md from literal
// lines. Lines are taken as-is; no validation is performed.
type PullRequestTemplate struct {
	lines []string
}

// NewPullRequestTemplate builds a template from the given lines.
func NewPullRequestTemplate(lines ...string) *PullRequestTemplate {
	return &PullRequestTemplate{lines: append([]string(nil), lines...)}
}

// Kind implements projtree.Component.
func (t *PullRequestTemplate) Kind() projtree.Kind { return KindPullRequestTemplate }

// Lines returns the template lines.
func (t *PullRequestTemplate) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Files implements projtree.FileProducer.
func (t *PullRequestTemplate) Files() ([]projtree.File, error) {
	content := strings.Join(t.lines, "\n")
	if content != "" {
		content += "\n"
	}
	return []projtree.File{{
		Path:    ".github/pull_request_template.md",
		Content: []byte(content),
	}}, nil
}
