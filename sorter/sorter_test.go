// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import (
	"errors"
	"math/rand"
	"sort"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newSorter(arr []int64, threshold int) *Sorter {
	s, err := New(arr, &Config{Threshold: threshold})
	Expect(err).NotTo(HaveOccurred())
	return s
}

func randArr(n int, seed int64) []int64 {
	rnd := rand.New(rand.NewSource(seed))
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = rnd.Int63() - rnd.Int63()
	}
	return arr
}

func sortedCopy(arr []int64) []int64 {
	out := append([]int64(nil), arr...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// countingSpawner recurses in-process while counting how many child contexts
// the orchestrator launches.
type countingSpawner struct {
	s *Sorter
	n atomic.Int64
}

func (cs *countingSpawner) Run(span Span) error {
	cs.n.Add(1)
	return cs.s.sortSpan(span)
}

// failingSpawner simulates abnormal child termination.
type failingSpawner struct{}

func (*failingSpawner) Run(span Span) error {
	return NewWorkerError(span, errors.New("simulated crash"))
}

var _ = Describe("Sorter", func() {
	It("should sort the concrete scenario with threshold 2", func() {
		arr := []int64{5, 3, 8, 1, 9, 2, 7, 4}
		Expect(newSorter(arr, 2).Sort()).To(Succeed())
		Expect(arr).To(Equal([]int64{1, 2, 3, 4, 5, 7, 8, 9}))
	})

	It("should preserve the multiset of values while ordering them", func() {
		arr := randArr(10000, 42)
		expected := sortedCopy(arr)
		Expect(newSorter(arr, 64).Sort()).To(Succeed())
		Expect(arr).To(Equal(expected))
	})

	It("should sort duplicates and negative values", func() {
		arr := []int64{3, -1, 3, 0, -1, 3, -7, 0}
		Expect(newSorter(arr, 1).Sort()).To(Succeed())
		Expect(arr).To(Equal([]int64{-7, -1, -1, 0, 0, 3, 3, 3}))
	})

	It("should produce identical output regardless of threshold", func() {
		base := randArr(4097, 7)
		expected := sortedCopy(base)
		for _, threshold := range []int{0, 1, 2, 3, 100, 4096, 1 << 20} {
			arr := append([]int64(nil), base...)
			Expect(newSorter(arr, threshold).Sort()).To(Succeed())
			Expect(arr).To(Equal(expected), "threshold %d", threshold)
		}
	})

	It("should be idempotent on an already-sorted span", func() {
		arr := randArr(1000, 11)
		Expect(newSorter(arr, 8).Sort()).To(Succeed())
		expected := append([]int64(nil), arr...)
		Expect(newSorter(arr, 3).Sort()).To(Succeed())
		Expect(arr).To(Equal(expected))
	})

	It("should treat an empty span as a no-op", func() {
		arr := []int64{2, 1}
		Expect(newSorter(arr, 4).SortSpan(Span{1, 1})).To(Succeed())
		Expect(arr).To(Equal([]int64{2, 1}))
	})

	It("should handle a single-element span", func() {
		arr := []int64{42}
		Expect(newSorter(arr, 0).Sort()).To(Succeed())
		Expect(arr).To(Equal([]int64{42}))
	})

	It("should sort only the requested sub-span", func() {
		arr := []int64{9, 5, 3, 1, 0}
		Expect(newSorter(arr, 1).SortSpan(Span{1, 4})).To(Succeed())
		Expect(arr).To(Equal([]int64{9, 1, 3, 5, 0}))
	})

	It("should take the sequential path when size equals the threshold", func() {
		arr := randArr(16, 3)
		s := newSorter(arr, 16)
		cs := &countingSpawner{s: s}
		s.spawn = cs
		Expect(s.Sort()).To(Succeed())
		Expect(cs.n.Load()).To(BeZero())
		Expect(arr).To(Equal(sortedCopy(randArr(16, 3))))
	})

	It("should split when size exceeds the threshold by one", func() {
		arr := randArr(17, 3)
		s := newSorter(arr, 16)
		cs := &countingSpawner{s: s}
		s.spawn = cs
		Expect(s.Sort()).To(Succeed())
		Expect(cs.n.Load()).To(Equal(int64(2)))
	})

	It("should spawn one worker per leaf pair in the concrete scenario", func() {
		// 8 elements, threshold 2: four leaves of size 2, three splits
		arr := []int64{5, 3, 8, 1, 9, 2, 7, 4}
		s := newSorter(arr, 2)
		cs := &countingSpawner{s: s}
		s.spawn = cs
		Expect(s.Sort()).To(Succeed())
		Expect(cs.n.Load()).To(Equal(int64(6)))
	})

	It("should propagate abnormal worker termination", func() {
		arr := randArr(100, 5)
		s := newSorter(arr, 10)
		s.spawn = &failingSpawner{}
		err := s.Sort()
		Expect(err).To(HaveOccurred())
		var werr *WorkerError
		Expect(errors.As(err, &werr)).To(BeTrue())
	})

	It("should reject an inverted span", func() {
		arr := randArr(10, 1)
		err := newSorter(arr, 2).SortSpan(Span{7, 3})
		var serr *InvalidSpanError
		Expect(errors.As(err, &serr)).To(BeTrue())
	})

	It("should reject a span beyond the array", func() {
		arr := randArr(10, 1)
		err := newSorter(arr, 2).SortSpan(Span{0, 11})
		var serr *InvalidSpanError
		Expect(errors.As(err, &serr)).To(BeTrue())
	})

	It("should reject a negative threshold", func() {
		_, err := New([]int64{1}, &Config{Threshold: -1})
		Expect(err).To(HaveOccurred())
	})
})
