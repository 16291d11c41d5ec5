/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package synth turns a project's component tree into files on disk. It walks
// every component, collects the output of each FileProducer, and writes the
// results under an output directory. The tree itself performs no I/O; this
// package is the downstream renderer.
package synth
