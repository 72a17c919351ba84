// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stacklist

import "github.com/cockroachdb/errors"

// ErrListFull is returned by Push when the list is at capacity. It is
// a routine signal, not a fatal condition: the list is unchanged and
// remains usable, and the push can be retried after a Pop.
var ErrListFull = errors.New("the list is full")
