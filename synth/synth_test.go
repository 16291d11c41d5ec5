/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package synth_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainguard.dev/repoforge/github"
	"chainguard.dev/repoforge/projtree"
	"chainguard.dev/repoforge/synth"
)

func TestSynthesizeWritesFiles(t *testing.T) {
	project := projtree.NewProject("demo")
	g, err := github.New(project, github.Options{})
	require.NoError(t, err)

	w := g.AddWorkflow("build")
	w.On("push", nil)
	w.AddJob("build", github.Job{
		RunsOn: "ubuntu-latest",
		Steps:  []github.Step{{Uses: "actions/checkout@v4"}},
	})

	outDir := t.TempDir()
	files, err := synth.Synthesize(context.Background(), project, synth.Options{OutDir: outDir})
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(f.Path)))
		require.NoError(t, err, "file %s should exist on disk", f.Path)
		assert.Equal(t, f.Content, data)
	}

	// The default artifact set includes the merge policy and the workflow.
	assert.FileExists(t, filepath.Join(outDir, ".mergify.yml"))
	assert.FileExists(t, filepath.Join(outDir, ".github", "workflows", "build.yml"))
}

func TestSynthesizeDryRun(t *testing.T) {
	project := projtree.NewProject("demo")
	_, err := github.New(project, github.Options{})
	require.NoError(t, err)

	outDir := t.TempDir()
	files, err := synth.Synthesize(context.Background(), project, synth.Options{
		OutDir: outDir,
		DryRun: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, files)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write anything")
}

type failingProducer struct{}

func (failingProducer) Kind() projtree.Kind { return "failing" }
func (failingProducer) Files() ([]projtree.File, error) {
	return nil, errors.New("boom")
}

func TestSynthesizeAbortsOnProducerError(t *testing.T) {
	project := projtree.NewProject("demo")
	project.Attach(failingProducer{})

	outDir := t.TempDir()
	_, err := synth.Synthesize(context.Background(), project, synth.Options{OutDir: outDir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a rendering failure must abort before any write")
}

func TestCollectSkipsNonProducers(t *testing.T) {
	project := projtree.NewProject("demo")
	g, err := github.New(project, github.Options{
		Mergify:         boolPtr(false),
		PullRequestLint: boolPtr(false),
		Stale:           boolPtr(false),
	})
	require.NoError(t, err)

	// The orchestrator itself produces no files.
	files, err := synth.Collect(project)
	require.NoError(t, err)
	assert.Empty(t, files)

	g.AddWorkflow("ci").On("push", nil)
	files, err = synth.Collect(project)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func boolPtr(b bool) *bool { return &b }
