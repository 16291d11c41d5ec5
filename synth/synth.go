/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/repoforge/projtree"
)

// Options configures a synthesis pass.
type Options struct {
	// OutDir is the directory files are written under. Defaults to the
	// current directory.
	OutDir string

	// DryRun collects and returns the planned files without writing.
	DryRun bool
}

// Synthesize renders every FileProducer in the project and writes the results
// under opts.OutDir. It returns the rendered files in component insertion
// order. A rendering failure in any component aborts the pass before anything
// is written.
func Synthesize(ctx context.Context, project *projtree.Project, opts Options) ([]projtree.File, error) {
	log := clog.FromContext(ctx)

	files, err := Collect(project)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		log.With("project", project.Name()).With("files", len(files)).Info("Dry run, skipping writes")
		return files, nil
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	for _, f := range files {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		filesWritten.Inc()
		log.With("path", f.Path).Info("Wrote file")
	}
	return files, nil
}

// Collect renders every FileProducer in the project without touching disk.
// Later components win when two producers emit the same path; the collision
// is surfaced to the caller through the returned slice order.
func Collect(project *projtree.Project) ([]projtree.File, error) {
	var files []projtree.File
	for _, c := range project.Components() {
		p, ok := c.(projtree.FileProducer)
		if !ok {
			continue
		}
		fs, err := p.Files()
		if err != nil {
			return nil, fmt.Errorf("rendering %s component: %w", c.Kind(), err)
		}
		componentsRendered.WithLabelValues(string(c.Kind())).Inc()
		files = append(files, fs...)
	}
	return files, nil
}
