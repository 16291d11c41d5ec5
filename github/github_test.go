/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package github_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chainguard.dev/repoforge/github"
	"chainguard.dev/repoforge/projtree"
)

func ptr(b bool) *bool { return &b }

func kindCounts(p *projtree.Project) map[projtree.Kind]int {
	counts := map[projtree.Kind]int{}
	for _, c := range p.Components() {
		counts[c.Kind()]++
	}
	return counts
}

func TestNewConstructsEnabledChildren(t *testing.T) {
	tests := []struct {
		name string
		opts github.Options
		want map[projtree.Kind]int
	}{{
		name: "defaults",
		opts: github.Options{},
		want: map[projtree.Kind]int{
			github.KindGitHub:          1,
			github.KindMergify:         1,
			github.KindPullRequestLint: 1,
			github.KindStale:           1,
		},
	}, {
		name: "everything off",
		opts: github.Options{
			Mergify:         ptr(false),
			PullRequestLint: ptr(false),
			Stale:           ptr(false),
		},
		want: map[projtree.Kind]int{
			github.KindGitHub: 1,
		},
	}, {
		name: "auto approve gated on presence",
		opts: github.Options{
			Mergify:         ptr(false),
			PullRequestLint: ptr(false),
			Stale:           ptr(false),
			AutoApprove:     &github.AutoApproveOptions{},
		},
		want: map[projtree.Kind]int{
			github.KindGitHub:      1,
			github.KindAutoApprove: 1,
		},
	}, {
		name: "mergify only",
		opts: github.Options{
			PullRequestLint: ptr(false),
			Stale:           ptr(false),
		},
		want: map[projtree.Kind]int{
			github.KindGitHub:  1,
			github.KindMergify: 1,
		},
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := projtree.NewProject("demo")
			if _, err := github.New(p, tc.opts); err != nil {
				t.Fatalf("New: %v", err)
			}
			if diff := cmp.Diff(tc.want, kindCounts(p)); diff != "" {
				t.Errorf("component counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !g.WorkflowsEnabled() {
		t.Error("WorkflowsEnabled() = false, want true by default")
	}
	if got := g.TokenSecret(); got != github.DefaultTokenSecret {
		t.Errorf("TokenSecret() = %q, want %q", got, github.DefaultTokenSecret)
	}
	if g.Mergify() == nil {
		t.Error("Mergify() = nil, want retained child by default")
	}
	if g.AutoApprove() != nil {
		t.Error("AutoApprove() != nil, want nil without options")
	}
}

func TestMergifyDisabledIgnoresOptions(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{
		Mergify: ptr(false),
		MergifyOptions: github.MergifyOptions{
			Rules: []github.MergifyRule{{Name: "merge", Conditions: []string{"base=main"}}},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Mergify() != nil {
		t.Error("Mergify() != nil, want nil when the switch is off")
	}
	if got := len(p.ByKind(github.KindMergify)); got != 0 {
		t.Errorf("got %d mergify components, want 0", got)
	}
}

func TestAutoApproveEmptyOptionsStillEnables(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{AutoApprove: &github.AutoApproveOptions{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.AutoApprove() == nil {
		t.Fatal("AutoApprove() = nil, want presence of the options object to enable the feature")
	}
	if got := g.AutoApprove().Label(); got != "auto-approve" {
		t.Errorf("Label() = %q, want default %q", got, "auto-approve")
	}
}

func TestNewRejectsNilProject(t *testing.T) {
	if _, err := github.New(nil, github.Options{}); err == nil {
		t.Error("New(nil, ...) succeeded, want error")
	}
}

func TestChildFailureAbortsConstruction(t *testing.T) {
	p := projtree.NewProject("demo")
	_, err := github.New(p, github.Options{
		StaleOptions: github.StaleOptions{
			Issues: github.StaleBehavior{DaysBeforeStale: -1},
		},
	})
	if err == nil {
		t.Fatal("New succeeded with invalid stale options, want error")
	}
	if !strings.Contains(err.Error(), "stale") {
		t.Errorf("error %q does not mention the failing child", err)
	}
	// All-or-nothing: the failed construction must leave the tree empty.
	if got := len(p.Components()); got != 0 {
		t.Errorf("got %d components after failed construction, want 0", got)
	}
}

func TestOf(t *testing.T) {
	p := projtree.NewProject("demo")
	if got := github.Of(p); got != nil {
		t.Errorf("Of() = %v before construction, want nil", got)
	}

	g, err := github.New(p, github.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := github.Of(p); got != g {
		t.Errorf("Of() = %p, want the constructed instance %p", got, g)
	}
}

func TestAddDependabotTwice(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d1 := g.AddDependabot(github.DependabotOptions{})
	d2 := g.AddDependabot(github.DependabotOptions{Ecosystem: "npm"})
	if d1 == d2 {
		t.Error("AddDependabot returned the same instance twice")
	}
	if got := len(p.ByKind(github.KindDependabot)); got != 2 {
		t.Errorf("got %d dependabot components, want 2", got)
	}
	if got := d1.Ecosystem(); got != "gomod" {
		t.Errorf("default ecosystem = %q, want gomod", got)
	}
}

func TestAddPullRequestTemplate(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tmpl := g.AddPullRequestTemplate("## Summary", "", "## Testing")
	if got := len(p.ByKind(github.KindPullRequestTemplate)); got != 1 {
		t.Fatalf("got %d template components, want 1", got)
	}
	want := []string{"## Summary", "", "## Testing"}
	if diff := cmp.Diff(want, tmpl.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenSecretOverride(t *testing.T) {
	p := projtree.NewProject("demo")
	g, err := github.New(p, github.Options{TokenSecret: "CUSTOM_TOKEN"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.TokenSecret(); got != "CUSTOM_TOKEN" {
		t.Errorf("TokenSecret() = %q, want CUSTOM_TOKEN", got)
	}
	if got := g.AddWorkflow("build").TokenSecret(); got != "CUSTOM_TOKEN" {
		t.Errorf("workflow TokenSecret() = %q, want the orchestrator's secret", got)
	}
}
