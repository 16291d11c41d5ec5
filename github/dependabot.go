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

// KindDependabot tags dependency-update components in the project tree.
const KindDependabot projtree.Kind = "dependabot"

// DependabotScheduleInterval is how often Dependabot checks for updates.
type DependabotScheduleInterval string

const (
	ScheduleDaily   DependabotScheduleInterval = "daily"
	ScheduleWeekly  DependabotScheduleInterval = "weekly"
	ScheduleMonthly DependabotScheduleInterval = "monthly"
)

// DependabotIgnore suppresses updates for a dependency, optionally limited to
// version ranges.
type DependabotIgnore struct {
	DependencyName string   `yaml:"dependencyName" json:"dependencyName"`
	Versions       []string `yaml:"versions,omitempty" json:"versions,omitempty"`
}

// DependabotOptions configures a dependency-update component. The zero value
// checks gomod dependencies at the repository root weekly.
type DependabotOptions struct {
	// Ecosystem is the package ecosystem to watch. Defaults to "gomod".
	Ecosystem string `yaml:"ecosystem,omitempty" json:"ecosystem,omitempty"`

	// Directory is where the manifests live. Defaults to "/".
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`

	// ScheduleInterval defaults to weekly.
	ScheduleInterval DependabotScheduleInterval `yaml:"scheduleInterval,omitempty" json:"scheduleInterval,omitempty"`

	Ignore []DependabotIgnore `yaml:"ignore,omitempty" json:"ignore,omitempty"`
	Labels []string           `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Dependabot renders .github/dependabot.yml.
type Dependabot struct {
	ecosystem string
	directory string
	interval  DependabotScheduleInterval
	ignore    []DependabotIgnore
	labels    []string
}

// NewDependabot builds a dependency-update component with defaults applied.
func NewDependabot(opts DependabotOptions) *Dependabot {
	d := &Dependabot{
		ecosystem: opts.Ecosystem,
		directory: opts.Directory,
		interval:  opts.ScheduleInterval,
		ignore:    append([]DependabotIgnore(nil), opts.Ignore...),
		labels:    append([]string(nil), opts.Labels...),
	}
	if d.ecosystem == "" {
		d.ecosystem = "gomod"
	}
	if d.directory == "" {
		d.directory = "/"
	}
	if d.interval == "" {
		d.interval = ScheduleWeekly
	}
	return d
}

// Kind implements projtree.Component.
func (d *Dependabot) Kind() projtree.Kind { return KindDependabot }

// Ecosystem returns the watched package ecosystem.
func (d *Dependabot) Ecosystem() string { return d.ecosystem }

// AddIgnore suppresses updates for the named dependency.
func (d *Dependabot) AddIgnore(dependencyName string, versions ...string) {
	d.ignore = append(d.ignore, DependabotIgnore{
		DependencyName: dependencyName,
		Versions:       versions,
	})
}

type dependabotUpdateDoc struct {
	PackageEcosystem string `yaml:"package-ecosystem"`
	Directory        string `yaml:"directory"`
	Schedule         struct {
		Interval DependabotScheduleInterval `yaml:"interval"`
	} `yaml:"schedule"`
	Ignore []dependabotIgnoreDoc `yaml:"ignore,omitempty"`
	Labels []string              `yaml:"labels,omitempty"`
}

type dependabotIgnoreDoc struct {
	DependencyName string   `yaml:"dependency-name"`
	Versions       []string `yaml:"versions,omitempty"`
}

type dependabotDoc struct {
	Version int                   `yaml:"version"`
	Updates []dependabotUpdateDoc `yaml:"updates"`
}

// Files implements projtree.FileProducer.
func (d *Dependabot) Files() ([]projtree.File, error) {
	update := dependabotUpdateDoc{
		PackageEcosystem: d.ecosystem,
		Directory:        d.directory,
		Labels:           d.labels,
	}
	update.Schedule.Interval = d.interval
	for _, ig := range d.ignore {
		update.Ignore = append(update.Ignore, dependabotIgnoreDoc{
			DependencyName: ig.DependencyName,
			Versions:       ig.Versions,
		})
	}
	data, err := yaml.Marshal(dependabotDoc{Version: 2, Updates: []dependabotUpdateDoc{update}})
	if err != nil {
		return nil, fmt.Errorf("marshaling dependabot config: %w", err)
	}
	return []projtree.File{{
		Path:    ".github/dependabot.yml",
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}
