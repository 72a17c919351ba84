// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package stacklist provides a fixed-capacity stack for short-lived
// bounded sequences.
//
// A StackList is backed by a single slice allocated at construction;
// pushing, popping, and iterating never allocate. Pushing past the
// capacity fails with ErrListFull rather than growing. The zero value
// is a usable list of capacity zero.
//
// A StackList is not safe for concurrent use.
package stacklist

import "github.com/cockroachdb/errors"

// StackList is a bounded LIFO container of T.
//
// Note: it is backed by a flat slice (unlike container/list which is
// backed by a linked list); the element count never exceeds the
// capacity fixed at construction.
type StackList[T any] struct {
	data []T
	// count is the index of the next free slot. Slots below count hold
	// live values in push order; slots at or above it are zero and are
	// never read.
	count int
}

// Make returns an empty StackList that can hold up to capacity
// elements. The backing storage is allocated here, once; no later
// operation allocates.
func Make[T any](capacity int) StackList[T] {
	if capacity < 0 {
		panic(errors.AssertionFailedf("capacity must be non-negative: %d", capacity))
	}
	return StackList[T]{data: make([]T, capacity)}
}

// Push adds v to the top of the list. If the list is at capacity, it
// returns ErrListFull and the list is unchanged.
func (l *StackList[T]) Push(v T) error {
	if l.IsFull() {
		return ErrListFull
	}
	l.data[l.count] = v
	l.count++
	return nil
}

// Pop removes and returns the element at the top of the list. The
// second return value is false if the list is empty.
func (l *StackList[T]) Pop() (T, bool) {
	var zero T
	if l.IsEmpty() {
		return zero, false
	}
	l.count--
	v := l.data[l.count]
	// Zero the vacated slot so the list doesn't retain the value.
	l.data[l.count] = zero
	return v, true
}

// Len returns the number of elements in the list.
func (l *StackList[T]) Len() int {
	return l.count
}

// Cap returns the capacity of the list.
func (l *StackList[T]) Cap() int {
	return len(l.data)
}

// IsFull returns true if the list is at capacity.
func (l *StackList[T]) IsFull() bool {
	return l.count == len(l.data)
}

// IsEmpty returns true if the list has no elements.
func (l *StackList[T]) IsEmpty() bool {
	return l.count == 0
}

// Reset removes all elements. The backing storage is retained and the
// vacated slots are zeroed.
func (l *StackList[T]) Reset() {
	var zero T
	for i := 0; i < l.count; i++ {
		l.data[i] = zero
	}
	l.count = 0
}
