// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workersSpawned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parsort",
		Name:      "workers_spawned_total",
		Help:      "Child execution contexts launched by splits in this process.",
	})
	mergesDone = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parsort",
		Name:      "merges_total",
		Help:      "Two-way merges performed in this process.",
	})
	seqSortedElems = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parsort",
		Name:      "seq_sorted_elements_total",
		Help:      "Elements sorted via the sequential cutoff in this process.",
	})
	sortFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "parsort",
		Name:      "failures_total",
		Help:      "Top-level sort invocations that returned an error.",
	})
)
