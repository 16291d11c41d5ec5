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

// KindMergify tags the merge-policy component in the project tree.
const KindMergify projtree.Kind = "mergify"

// MergifyRule is a pull request rule: when every condition holds, the actions
// run.
type MergifyRule struct {
	Name       string         `yaml:"name" json:"name"`
	Conditions []string       `yaml:"conditions" json:"conditions"`
	Actions    map[string]any `yaml:"actions" json:"actions"`
}

// MergifyQueue is a merge queue definition.
type MergifyQueue struct {
	Name        string   `yaml:"name" json:"name"`
	Conditions  []string `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	MergeMethod string   `yaml:"mergeMethod,omitempty" json:"mergeMethod,omitempty"`
}

// MergifyOptions seeds the merge policy. Rules and queues can also be added
// after construction with AddRule and AddQueue.
type MergifyOptions struct {
	Rules  []MergifyRule  `yaml:"rules,omitempty" json:"rules,omitempty"`
	Queues []MergifyQueue `yaml:"queues,omitempty" json:"queues,omitempty"`
}

// Mergify renders the project's .mergify.yml merge policy.
type Mergify struct {
	rules  []MergifyRule
	queues []MergifyQueue
}

// NewMergify builds the merge-policy component. The component does not
// validate rule contents; Mergify itself reports malformed policies.
func NewMergify(opts MergifyOptions) *Mergify {
	return &Mergify{
		rules:  append([]MergifyRule(nil), opts.Rules...),
		queues: append([]MergifyQueue(nil), opts.Queues...),
	}
}

// Kind implements projtree.Component.
func (m *Mergify) Kind() projtree.Kind { return KindMergify }

// AddRule appends a pull request rule.
func (m *Mergify) AddRule(rule MergifyRule) {
	m.rules = append(m.rules, rule)
}

// AddQueue appends a merge queue.
func (m *Mergify) AddQueue(queue MergifyQueue) {
	m.queues = append(m.queues, queue)
}

// Rules returns the accumulated pull request rules in insertion order.
func (m *Mergify) Rules() []MergifyRule {
	return append([]MergifyRule(nil), m.rules...)
}

type mergifyQueueDoc struct {
	Name        string   `yaml:"name"`
	Conditions  []string `yaml:"conditions,omitempty"`
	MergeMethod string   `yaml:"merge_method,omitempty"`
}

type mergifyDoc struct {
	QueueRules       []mergifyQueueDoc `yaml:"queue_rules,omitempty"`
	PullRequestRules []MergifyRule     `yaml:"pull_request_rules"`
}

// Files implements projtree.FileProducer.
func (m *Mergify) Files() ([]projtree.File, error) {
	doc := mergifyDoc{PullRequestRules: m.rules}
	if doc.PullRequestRules == nil {
		doc.PullRequestRules = []MergifyRule{}
	}
	for _, q := range m.queues {
		doc.QueueRules = append(doc.QueueRules, mergifyQueueDoc{
			Name:        q.Name,
			Conditions:  q.Conditions,
			MergeMethod: q.MergeMethod,
		})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling mergify policy: %w", err)
	}
	return []projtree.File{{
		Path:    ".mergify.yml",
		Content: append([]byte(generatedHeader), data...),
	}}, nil
}
