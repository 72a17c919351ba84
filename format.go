// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stacklist

import "github.com/cockroachdb/redact"

var _ redact.SafeFormatter = (*StackList[int])(nil)

func (l *StackList[T]) String() string {
	return redact.StringWithoutMarkers(l)
}

// SafeFormat implements redact.SafeFormatter. Only the counts are
// printed; elements may hold unredactable values.
func (l *StackList[T]) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("stacklist{len=%d cap=%d}", l.Len(), l.Cap())
}
