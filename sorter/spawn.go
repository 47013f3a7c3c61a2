// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

// Spawner runs one child execution context over its assigned span and blocks
// until the context terminates, returning nil only if the span was fully
// sorted. The orchestrator launches both children of a split before awaiting
// either, so Run must be safe to call concurrently from sibling goroutines
// (sibling spans are disjoint).
//
// Implementations: the default in-process spawner below recurses in a fresh
// goroutine; cmd/parsort provides a process spawner that re-execs the binary
// on the same mapped file.
type Spawner interface {
	Run(span Span) error
}

// goSpawner sorts the span within the calling process. The goroutine is
// created by the orchestrator's fan-out; Run itself just recurses.
type goSpawner struct {
	s *Sorter
}

func (gs *goSpawner) Run(span Span) error { return gs.s.sortSpan(span) }
