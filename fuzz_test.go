// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stacklist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzOps interprets the input as a capacity followed by a push/pop
// sequence and checks the list against a plain slice model: the count
// stays within [0, capacity], pops come out in reverse push order, and
// no operation panics.
func FuzzOps(f *testing.F) {
	f.Add([]byte{3, 2, 4, 6, 8, 1, 1, 1, 1, 1})
	f.Add([]byte{0, 2, 1})
	f.Add([]byte{1, 2, 2, 1, 1})
	f.Add([]byte{16})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		capacity := int(data[0]) % 17
		l := Make[byte](capacity)
		var model []byte

		for _, op := range data[1:] {
			if op%2 == 0 {
				err := l.Push(op)
				if len(model) == capacity {
					require.ErrorIs(t, err, ErrListFull)
				} else {
					require.NoError(t, err)
					model = append(model, op)
				}
			} else {
				v, ok := l.Pop()
				if len(model) == 0 {
					require.False(t, ok)
				} else {
					require.True(t, ok)
					require.Equal(t, model[len(model)-1], v)
					model = model[:len(model)-1]
				}
			}
			require.Equal(t, len(model), l.Len())
			require.LessOrEqual(t, l.Len(), capacity)
		}

		i := 0
		for it := l.Iter(); it.Valid(); it.Next() {
			require.Equal(t, model[i], it.Cur())
			i++
		}
		require.Equal(t, len(model), i)

		dr := l.Drain()
		for j := len(model) - 1; j >= 0; j-- {
			v, ok := dr.Next()
			require.True(t, ok)
			require.Equal(t, model[j], v)
		}
		_, ok := dr.Next()
		require.False(t, ok)
		require.True(t, l.IsEmpty())
	})
}
