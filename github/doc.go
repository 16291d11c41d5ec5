/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package github builds the GitHub-side automation artifacts for a scaffolded
// project. The GitHub orchestrator reads a single Options value, constructs
// the enabled child components (merge policy, stale handling, pull request
// lint, auto approval), and attaches them all to the project tree. Later code
// paths recover the orchestrator with Of and use its factory methods to add
// workflows, pull request templates, and Dependabot configuration.
//
// The orchestrator retains only the children it exposes directly (Mergify and
// AutoApprove). Stale and PullRequestLint are reachable through the project
// tree alone; this minimal-surface contract is deliberate.
package github
