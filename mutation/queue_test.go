// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mutation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	var got []string
	add := func(name string, deps ...*Operation) *Operation {
		return q.Add(name, func() { got = append(got, name) }, deps...)
	}
	a := add("a")
	add("b")
	add("c")
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, Pending, a.State())

	assert.Equal(t, 3, q.Run())
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, Finished, a.State())
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Run())
}

func TestQueueDependencies(t *testing.T) {
	q := NewQueue()
	var got []string
	var later *Operation
	first := q.Add("first", func() { got = append(got, "first") })
	waiting := q.Add("waiting", func() { got = append(got, "waiting") }, first)
	q.Add("other", func() { got = append(got, "other") })
	later = q.Add("later", func() { got = append(got, "later") })
	q.Add("after-later", func() { got = append(got, "after-later") }, later)

	q.Run()
	assert.Equal(t, []string{"first", "waiting", "other", "later", "after-later"}, got)
	assert.Equal(t, Finished, waiting.State())
}

func TestQueueDeferredDependency(t *testing.T) {
	q := NewQueue()
	var got []string
	dep := &Operation{Name: "external", done: make(chan struct{}), queue: q}
	blocked := q.Add("blocked", func() { got = append(got, "blocked") }, dep)
	q.Add("free", func() { got = append(got, "free") })

	assert.Equal(t, 1, q.Run())
	assert.Equal(t, []string{"free"}, got)
	assert.Equal(t, Pending, blocked.State())
	assert.Equal(t, 1, q.Len())

	dep.state = Finished
	assert.Equal(t, 1, q.Run())
	assert.Equal(t, []string{"free", "blocked"}, got)
}

func TestQueueCancel(t *testing.T) {
	q := NewQueue()
	ran := false
	a := q.Add("a", func() { ran = true })
	b := q.Add("b", func() { ran = true }, a)
	c := q.Add("c", func() { ran = true }, b)
	q.CancelAll()
	assert.Zero(t, q.Len())
	assert.Equal(t, Cancelled, a.State())
	assert.Equal(t, Cancelled, c.State())
	a.Wait()
	c.Wait()
	assert.Zero(t, q.Run())
	assert.False(t, ran)

	cancelled := &Operation{Name: "gone", state: Cancelled, done: make(chan struct{}), queue: q}
	d := q.Add("d", func() { ran = true }, cancelled)
	e := q.Add("e", func() { ran = true }, d)
	assert.Zero(t, q.Run())
	assert.False(t, ran)
	assert.Equal(t, Cancelled, d.State())
	assert.Equal(t, Cancelled, e.State())
	assert.Zero(t, q.Len())
}

func TestQueueSuspend(t *testing.T) {
	q := NewQueue()
	ran := 0
	q.Suspend()
	assert.True(t, q.IsSuspended())
	op := q.Sync("sync", func() { ran++ })
	assert.Equal(t, Pending, op.State())
	assert.Zero(t, ran)

	q.Resume()
	assert.False(t, q.IsSuspended())
	assert.Zero(t, ran)
	assert.Equal(t, 1, q.Run())
	assert.Equal(t, 1, ran)
	assert.Equal(t, "sync (Finished)", op.String())
}

func TestQueueSync(t *testing.T) {
	q := NewQueue()
	var mu sync.Mutex
	total := 0
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				op := q.Sync("add", func() {
					mu.Lock()
					total++
					mu.Unlock()
				})
				// another goroutine may be draining, in which case
				// the operation finishes there
				op.Wait()
			}
		}()
	}
	wg.Wait()
	q.Run()
	require.Zero(t, q.Len())
	assert.Equal(t, 80, total)
}

func TestQueueRunning(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Running())
	var inside *Operation
	op := q.Add("look", func() { inside = q.Running() })
	q.Run()
	assert.Same(t, op, inside)
	assert.Nil(t, q.Running())
}

func TestQueuePanic(t *testing.T) {
	q := NewQueue()
	bad := q.Add("bad", func() { panic("bad operation") })
	after := q.Add("after", func() {}, bad)
	assert.PanicsWithValue(t, "bad operation", func() { q.Run() })
	assert.Equal(t, Cancelled, bad.State())
	bad.Wait()
	assert.Nil(t, q.Running())

	ran := false
	q.Add("next", func() { ran = true })
	assert.Equal(t, 1, q.Run())
	assert.True(t, ran)
	assert.Equal(t, Cancelled, after.State())
	after.Wait()
	assert.Zero(t, q.Len())
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Cancelled", Cancelled.String())
	assert.Equal(t, "States(9)", States(9).String())
	assert.Equal(t, "GeometryField", ControlGeometryField.String())
	assert.Equal(t, "Controls(-1)", Controls(-1).String())
}
