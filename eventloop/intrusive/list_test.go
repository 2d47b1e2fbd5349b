// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intrusive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/corebus/eventloop/intrusive"
)

func reachableForward(l *intrusive.List[int]) []int {
	var out []int
	l.Each(func(h intrusive.Handle, v *int) bool {
		out = append(out, *v)
		return true
	})
	return out
}

func reachableBackward(l *intrusive.List[int]) []int {
	var out []int
	for h := l.Back(); h != intrusive.Nil; h = l.Prev(h) {
		out = append(out, *l.Value(h))
	}
	return out
}

func TestPushBackOrder(t *testing.T) {
	l := intrusive.New[int](4)
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, reachableForward(l))
	require.Equal(t, []int{3, 2, 1}, reachableBackward(l))
	require.Equal(t, 3, l.Len())
}

func TestRemoveMiddleNullsLinks(t *testing.T) {
	l := intrusive.New[int](4)
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)
	l.Remove(b)
	require.Equal(t, []int{1, 3}, reachableForward(l))
	require.Equal(t, 2, l.Len())
	require.Equal(t, c, l.Next(a))
	require.Equal(t, a, l.Prev(c))
	require.Equal(t, intrusive.Nil, l.Next(b))
	require.Equal(t, intrusive.Nil, l.Prev(b))
}

func TestSizeEqualsReachableBothDirections(t *testing.T) {
	l := intrusive.New[int](8)
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	l.Remove(l.Front())
	l.Remove(l.Back())
	require.Equal(t, l.Len(), len(reachableForward(l)))
	require.Equal(t, l.Len(), len(reachableBackward(l)))
}

func TestInsertBeforeMaintainsOrder(t *testing.T) {
	l := intrusive.New[int](4)
	b := l.PushBack(2)
	l.InsertBefore(b, 1)
	l.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, reachableForward(l))
}

func TestFreedHandleReused(t *testing.T) {
	l := intrusive.New[int](2)
	a := l.PushBack(1)
	l.Remove(a)
	b := l.PushBack(2)
	require.Equal(t, a, b)
}
