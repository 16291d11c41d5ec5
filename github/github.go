/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"chainguard.dev/repoforge/projtree"
)

// KindGitHub tags the orchestrator component in the project tree.
const KindGitHub projtree.Kind = "github"

// GitHub is the orchestrator for a project's GitHub automation artifacts. It
// is itself a component of the project it configures. Construct one per
// project; Of recovers it from the tree afterwards.
type GitHub struct {
	project *projtree.Project

	workflowsEnabled bool
	tokenSecret      string

	// Retained children. Stale and PullRequestLint are constructed too but
	// only reachable through the project tree.
	mergify     *Mergify
	autoApprove *AutoApprove
}

// New builds the orchestrator and every enabled child, then attaches them all
// to project. Construction is all-or-nothing: if any child constructor fails,
// the error propagates and nothing is attached.
func New(project *projtree.Project, opts Options) (*GitHub, error) {
	if project == nil {
		return nil, errors.New("project cannot be nil")
	}

	g := &GitHub{
		project:          project,
		workflowsEnabled: enabled(opts.Workflows),
		tokenSecret:      opts.TokenSecret,
	}
	if g.tokenSecret == "" {
		g.tokenSecret = DefaultTokenSecret
	}

	// Build children before attaching anything so a constructor failure
	// leaves the tree untouched.
	var children []projtree.Component

	if enabled(opts.Mergify) {
		g.mergify = NewMergify(opts.MergifyOptions)
		children = append(children, g.mergify)
	}

	if enabled(opts.PullRequestLint) {
		lint, err := NewPullRequestLint(opts.PullRequestLintOptions)
		if err != nil {
			return nil, fmt.Errorf("configuring pull request lint: %w", err)
		}
		lint.active = g.workflowsEnabled
		children = append(children, lint)
	}

	if opts.AutoApprove != nil {
		g.autoApprove = NewAutoApprove(*opts.AutoApprove)
		g.autoApprove.active = g.workflowsEnabled
		children = append(children, g.autoApprove)
	}

	if enabled(opts.Stale) {
		stale, err := NewStale(opts.StaleOptions)
		if err != nil {
			return nil, fmt.Errorf("configuring stale handling: %w", err)
		}
		stale.active = g.workflowsEnabled
		children = append(children, stale)
	}

	project.Attach(g)
	for _, c := range children {
		project.Attach(c)
	}
	return g, nil
}

// Of returns the first GitHub orchestrator attached to project, or nil if
// none exists. Projects are expected to carry at most one; with several, the
// winner beyond "first attached" is unspecified.
func Of(project *projtree.Project) *GitHub {
	for _, c := range project.ByKind(KindGitHub) {
		if g, ok := c.(*GitHub); ok {
			return g
		}
	}
	return nil
}

// Kind implements projtree.Component.
func (g *GitHub) Kind() projtree.Kind { return KindGitHub }

// Project returns the project this orchestrator configures.
func (g *GitHub) Project() *projtree.Project { return g.project }

// WorkflowsEnabled reports whether workflow file bodies are materialized.
// Immutable after construction.
func (g *GitHub) WorkflowsEnabled() bool { return g.workflowsEnabled }

// TokenSecret returns the name of the secret generated workflows reference.
// Immutable after construction.
func (g *GitHub) TokenSecret() string { return g.tokenSecret }

// Mergify returns the merge-policy child, or nil when disabled.
func (g *GitHub) Mergify() *Mergify { return g.mergify }

// AutoApprove returns the auto-approval child, or nil when not configured.
func (g *GitHub) AutoApprove() *AutoApprove { return g.autoApprove }

// Workflows returns every workflow component currently in the project,
// sorted ascending by name under locale-aware collation. The view is
// recomputed on each call so it always reflects the live tree; duplicate
// names sort adjacently with their relative order preserved.
func (g *GitHub) Workflows() []*Workflow {
	comps := g.project.ByKind(KindWorkflow)
	ws := make([]*Workflow, 0, len(comps))
	for _, c := range comps {
		if w, ok := c.(*Workflow); ok {
			ws = append(ws, w)
		}
	}
	coll := collate.New(language.English)
	slices.SortStableFunc(ws, func(a, b *Workflow) int {
		return coll.CompareString(a.Name(), b.Name())
	})
	return ws
}

// TryFindWorkflow returns the first workflow in sorted order whose name
// matches exactly, or nil if none does.
func (g *GitHub) TryFindWorkflow(name string) *Workflow {
	for _, w := range g.Workflows() {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// AddWorkflow constructs a workflow with the given name and attaches it to
// the project. No duplicate-name check is performed; callers that need
// deterministic TryFindWorkflow results must keep names unique themselves.
func (g *GitHub) AddWorkflow(name string) *Workflow {
	w := newWorkflow(name, g.tokenSecret, g.workflowsEnabled)
	g.project.Attach(w)
	return w
}

// AddPullRequestTemplate attaches a pull request template rendered from the
// given lines and returns it.
func (g *GitHub) AddPullRequestTemplate(lines ...string) *PullRequestTemplate {
	t := NewPullRequestTemplate(lines...)
	g.project.Attach(t)
	return t
}

// AddDependabot attaches a Dependabot configuration and returns it. Calling
// this more than once registers independent configurations; the tree does not
// deduplicate.
func (g *GitHub) AddDependabot(opts DependabotOptions) *Dependabot {
	d := NewDependabot(opts)
	g.project.Attach(d)
	return d
}
