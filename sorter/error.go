// Package sorter implements a parallel divide-and-conquer sort of a shared
// []int64 array.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package sorter

import "fmt"

type (
	// InvalidSpanError: the requested range does not lie within the array.
	InvalidSpanError struct {
		Span Span
		Len  int
	}

	// SpawnError: a child execution context could not be created. Fatal to
	// the whole sort - there is no fallback to in-process execution.
	SpawnError struct {
		Err  error
		Span Span
	}

	// WorkerError: a child execution context terminated abnormally. The
	// affected span may be left in an indeterminate order.
	WorkerError struct {
		Err  error
		Span Span
	}
)

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span [%d, %d) over array of length %d", e.Span.Begin, e.Span.End, e.Len)
}

func NewSpawnError(span Span, err error) error { return &SpawnError{Err: err, Span: span} }

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn worker for [%d, %d): %v", e.Span.Begin, e.Span.End, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func NewWorkerError(span Span, err error) error { return &WorkerError{Err: err, Span: span} }

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker for [%d, %d) terminated abnormally: %v", e.Span.Begin, e.Span.End, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }
