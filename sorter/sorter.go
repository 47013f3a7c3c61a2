// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array. Each split hands its two halves to independently executing
// workers (goroutines by default, or cooperating processes via a custom
// Spawner), waits for both, and merges the sorted halves in place. Sibling
// spans are disjoint, so workers never write overlapping indices and the
// only synchronization point is worker termination.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import (
	"time"

	"github.com/benchang323/parsort/cmn/cos"
	"github.com/benchang323/parsort/cmn/nlog"
	"github.com/benchang323/parsort/memsys"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type (
	// Span is a half-open index range [Begin, End) denoting the subproblem
	// owned by one execution context.
	Span struct {
		Begin, End int
	}

	Config struct {
		// Spawner runs child execution contexts; nil selects in-process
		// goroutine workers.
		Spawner Spawner
		// Pool supplies merge scratch buffers; nil allocates a private one.
		Pool *memsys.Pool
		// RunID tags log lines across the worker tree; generated if empty.
		RunID string
		// Threshold is the span size at or below which a span is sorted
		// sequentially instead of split further.
		Threshold int
	}

	Sorter struct {
		arr       []int64
		spawn     Spawner
		pool      *memsys.Pool
		runID     string
		threshold int
	}
)

func (s Span) Size() int { return s.End - s.Begin }

func New(arr []int64, cfg *Config) (*Sorter, error) {
	if cfg.Threshold < 0 {
		return nil, errors.Errorf("invalid threshold %d (must be non-negative)", cfg.Threshold)
	}
	s := &Sorter{
		arr:       arr,
		spawn:     cfg.Spawner,
		pool:      cfg.Pool,
		runID:     cfg.RunID,
		threshold: cfg.Threshold,
	}
	if s.spawn == nil {
		s.spawn = &goSpawner{s}
	}
	if s.pool == nil {
		s.pool = memsys.NewPool()
	}
	if s.runID == "" {
		s.runID = cos.GenRunID()
	}
	return s, nil
}

func (s *Sorter) RunID() string { return s.runID }

// Sort sorts the entire array ascending, in place. It returns only after the
// array is fully sorted; on error the array must not be treated as sorted.
func (s *Sorter) Sort() error {
	return s.SortSpan(Span{0, len(s.arr)})
}

// SortSpan sorts [span.Begin, span.End) ascending, in place.
func (s *Sorter) SortSpan(span Span) error {
	if span.Begin < 0 || span.End < span.Begin || span.End > len(s.arr) {
		return &InvalidSpanError{Span: span, Len: len(s.arr)}
	}
	started := time.Now()
	if err := s.sortSpan(span); err != nil {
		sortFailures.Inc()
		nlog.Errorf("%s: sort [%d, %d) failed: %v", s.runID, span.Begin, span.End, err)
		return err
	}
	nlog.Infof("%s: sorted [%d, %d), %d elements, threshold %d (%v)",
		s.runID, span.Begin, span.End, span.Size(), s.threshold, time.Since(started))
	return nil
}

func (s *Sorter) sortSpan(span Span) error {
	size := span.Size()

	// Sequential cutoff. The size < 2 guard also terminates the recursion
	// when threshold == 0: a single element cannot be split into two
	// non-empty halves.
	if size <= s.threshold || size < 2 {
		s.seqSort(span)
		return nil
	}

	// Left half gets the smaller share when size is odd.
	mid := span.Begin + size/2
	left, right := Span{span.Begin, mid}, Span{mid, span.End}

	// Both workers are launched before either is awaited, and the merge must
	// not start until both have terminated. The first abnormal termination
	// aborts the whole sort - no retry, no sequential fallback.
	var group errgroup.Group
	group.Go(func() error { return s.spawn.Run(left) })
	group.Go(func() error { return s.spawn.Run(right) })
	workersSpawned.Add(2)
	if err := group.Wait(); err != nil {
		return err
	}

	s.merge(span.Begin, mid, span.End)
	return nil
}
