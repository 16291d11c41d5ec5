/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainguard.dev/repoforge/github"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repoforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	path := writeConfig(t, `
name: demo
github:
  mergify: false
  tokenSecret: CI_TOKEN
  autoApprove:
    label: ship-it
`)

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}

	project, gh, err := buildProject(cfg)
	if err != nil {
		t.Fatalf("buildProject: %v", err)
	}
	if gh.Mergify() != nil {
		t.Error("mergify built despite mergify: false")
	}
	if got := gh.TokenSecret(); got != "CI_TOKEN" {
		t.Errorf("TokenSecret() = %q, want CI_TOKEN", got)
	}
	if gh.AutoApprove() == nil || gh.AutoApprove().Label() != "ship-it" {
		t.Error("autoApprove options not threaded through")
	}
	if github.Of(project) != gh {
		t.Error("orchestrator not discoverable from the built project")
	}
}

func TestLoadProjectConfigRequiresName(t *testing.T) {
	path := writeConfig(t, "github: {}\n")
	if _, err := loadProjectConfig(path); err == nil {
		t.Error("loadProjectConfig accepted a config without a name")
	}
}

func TestWriteComponentTable(t *testing.T) {
	cfg := &projectConfig{Name: "demo"}
	project, gh, err := buildProject(cfg)
	if err != nil {
		t.Fatalf("buildProject: %v", err)
	}
	gh.AddWorkflow("release")

	var buf bytes.Buffer
	if err := writeComponentTable(&buf, project, gh); err != nil {
		t.Fatalf("writeComponentTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"github", "workflow", "release", "mergify"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
