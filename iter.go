// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stacklist

// Iter is an iterator over the elements of a StackList in push order
// (oldest first). It does not remove elements. Usage:
//
//	for it := l.Iter(); it.Valid(); it.Next() {
//	    _ = it.Cur()
//	}
//
// An Iter must not be used across mutations of the underlying list.
type Iter[T any] struct {
	list *StackList[T]
	pos  int
}

// Iter returns an iterator over the elements of the list, bottom to
// top. Each call returns a fresh iterator positioned at the bottom.
func (l *StackList[T]) Iter() Iter[T] {
	return Iter[T]{list: l}
}

// Valid returns true if the iterator is positioned on an element.
func (it *Iter[T]) Valid() bool {
	return it.pos < it.list.count
}

// Cur returns the element at the iterator's current position.
func (it *Iter[T]) Cur() T {
	return it.list.data[it.pos]
}

// Next advances the iterator by one element.
func (it *Iter[T]) Next() {
	it.pos++
}

// Remaining returns the exact number of elements left to visit,
// including the current one.
func (it *Iter[T]) Remaining() int {
	return it.list.count - it.pos
}

// Drainer is an iterator that removes elements from a StackList in
// pop order (newest first). Each Next is a Pop on the underlying
// list; once the Drainer is exhausted the list is empty.
type Drainer[T any] struct {
	list *StackList[T]
}

// Drain returns an iterator that consumes the list top to bottom.
// The list empties as the iterator advances.
func (l *StackList[T]) Drain() Drainer[T] {
	return Drainer[T]{list: l}
}

// Next removes and returns the next element. The second return value
// is false once the list is exhausted.
func (d *Drainer[T]) Next() (T, bool) {
	return d.list.Pop()
}
