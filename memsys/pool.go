// Package memsys provides a slab-based allocator for the int64 scratch
// buffers used by merge steps.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package memsys

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

const (
	minSlabElems = 1 << 10 // smallest size class
	numSlabs     = 16      // largest size class: 32Mi elements (256MiB)
)

// Pool hands out []int64 buffers from power-of-two size classes. A buffer is
// owned exclusively by the merge that allocated it and must be returned via
// Free once the merged result has been copied back.
type Pool struct {
	slabs  [numSlabs]sync.Pool
	hits   atomic.Int64
	misses atomic.Int64
}

func NewPool() *Pool {
	p := &Pool{}
	for i := range p.slabs {
		elems := minSlabElems << i
		p.slabs[i].New = func() any {
			buf := make([]int64, elems)
			return &buf
		}
	}
	return p
}

func slabIndex(n int) int {
	if n <= minSlabElems {
		return 0
	}
	return bits.Len(uint(n-1)) - bits.Len(uint(minSlabElems)) + 1
}

// Alloc returns a buffer of exactly n elements. Requests above the largest
// size class are served by the runtime directly and dropped on Free.
func (p *Pool) Alloc(n int) []int64 {
	idx := slabIndex(n)
	if idx >= numSlabs {
		p.misses.Add(1)
		return make([]int64, n)
	}
	p.hits.Add(1)
	buf := *p.slabs[idx].Get().(*[]int64)
	return buf[:n]
}

func (p *Pool) Free(buf []int64) {
	c := cap(buf)
	if c < minSlabElems || c&(c-1) != 0 || c > minSlabElems<<(numSlabs-1) {
		return
	}
	buf = buf[:c]
	p.slabs[slabIndex(c)].Put(&buf)
}

// Hits and Misses report how many allocations were, respectively, served
// from a size class vs delegated to the runtime.
func (p *Pool) Hits() int64   { return p.hits.Load() }
func (p *Pool) Misses() int64 { return p.misses.Load() }
