// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import "sort"

// compareI64 is the one comparator of the system: ascending order, ties
// interchangeable (bare integers carry no payload).
func compareI64(left, right int64) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// seqSort sorts the span in-process; stability is not required.
func (s *Sorter) seqSort(span Span) {
	sub := s.arr[span.Begin:span.End]
	sort.Slice(sub, func(i, j int) bool { return compareI64(sub[i], sub[j]) < 0 })
	seqSortedElems.Add(float64(span.Size()))
}
