// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Merge", func() {
	mergeSpan := func(arr []int64, begin, mid, end int) {
		s := newSorter(arr, 0)
		s.merge(begin, mid, end)
	}

	It("should interleave two sorted sub-spans", func() {
		arr := []int64{1, 4, 7, 2, 2, 9}
		mergeSpan(arr, 0, 3, 6)
		Expect(arr).To(Equal([]int64{1, 2, 2, 4, 7, 9}))
	})

	It("should drain the right side when the left is empty", func() {
		arr := []int64{3, 5, 8}
		mergeSpan(arr, 0, 0, 3)
		Expect(arr).To(Equal([]int64{3, 5, 8}))
	})

	It("should drain the left side when the right is empty", func() {
		arr := []int64{3, 5, 8}
		mergeSpan(arr, 0, 3, 3)
		Expect(arr).To(Equal([]int64{3, 5, 8}))
	})

	It("should merge within a larger array without touching the outside", func() {
		arr := []int64{100, 1, 9, 2, 8, -5}
		mergeSpan(arr, 1, 3, 5)
		Expect(arr).To(Equal([]int64{100, 1, 2, 8, 9, -5}))
	})

	It("should handle fully disjoint value ranges", func() {
		arr := []int64{1, 2, 3, 10, 20, 30}
		mergeSpan(arr, 0, 3, 6)
		Expect(arr).To(Equal([]int64{1, 2, 3, 10, 20, 30}))

		arr = []int64{10, 20, 30, 1, 2, 3}
		mergeSpan(arr, 0, 3, 6)
		Expect(arr).To(Equal([]int64{1, 2, 3, 10, 20, 30}))
	})
})
