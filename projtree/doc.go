/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package projtree provides the component tree that every generated-artifact
// node attaches to. A Project owns an ordered collection of Components; each
// component carries a Kind tag that queries filter on, so discovery never
// depends on dynamic type inspection. Components that materialize files
// implement FileProducer, which downstream renderers traverse.
package projtree
