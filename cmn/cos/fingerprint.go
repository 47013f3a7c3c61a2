// Package cos provides common low-level types and utilities for parsort.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package cos

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes an order-independent multiset digest of the array:
// identical before/after an in-place sort, different when any value is
// added, lost, or duplicated. Per-element hashing (rather than summing raw
// values) keeps compensating edits from canceling out.
func Fingerprint(arr []int64) (fp uint64) {
	var b [8]byte
	for _, v := range arr {
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		fp += xxhash.Sum64(b[:])
	}
	return
}
