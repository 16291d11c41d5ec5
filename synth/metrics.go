/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	componentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repoforge_components_rendered_total",
			Help: "Total number of components rendered during synthesis",
		},
		[]string{"kind"},
	)

	filesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repoforge_files_written_total",
			Help: "Total number of files written during synthesis",
		},
	)
)
