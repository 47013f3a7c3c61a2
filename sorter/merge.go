// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import (
	"github.com/benchang323/parsort/cmn/cos"
)

// merge combines the adjacent sorted sub-spans [begin, mid) and [mid, end)
// into a single sorted span [begin, end), in place. Classic two-pointer merge
// through a scratch buffer sized exactly end-begin; the left cursor wins ties,
// and once either side is exhausted the other is drained without further
// comparisons. Either sub-span may be empty.
func (s *Sorter) merge(begin, mid, end int) {
	cos.Assertf(begin <= mid && mid <= end, "merge [%d, %d, %d)", begin, mid, end)

	buf := s.pool.Alloc(end - begin)
	left, right := s.arr[begin:mid], s.arr[mid:end]

	var li, ri, wi int
	for li < len(left) && ri < len(right) {
		if compareI64(left[li], right[ri]) <= 0 {
			buf[wi] = left[li]
			li++
		} else {
			buf[wi] = right[ri]
			ri++
		}
		wi++
	}
	wi += copy(buf[wi:], left[li:])
	copy(buf[wi:], right[ri:])

	copy(s.arr[begin:end], buf)
	s.pool.Free(buf)
	mergesDone.Inc()
}
