// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mutation applies edits made in the inspector to live elements
// through a serial queue of named operations, in a deterministic
// will-update, mutate, did-update order.
package mutation

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// States are the states of an [Operation].
type States int32

const (
	// Pending operations are waiting in the queue.
	Pending States = iota

	// Running operations are currently executing.
	Running

	// Finished operations have executed.
	Finished

	// Cancelled operations were removed from the queue without executing.
	Cancelled
)

func (s States) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// Operation is one named unit of work in a [Queue].
type Operation struct {

	// Name is the name of the operation, used for logging.
	Name string

	fun   func()
	deps  []*Operation
	state States
	done  chan struct{}
	queue *Queue
}

// State returns the current state of the operation.
func (op *Operation) State() States {
	op.queue.mu.Lock()
	defer op.queue.mu.Unlock()
	return op.state
}

// Wait blocks until the operation has finished or been cancelled.
func (op *Operation) Wait() {
	<-op.done
}

func (op *Operation) String() string {
	return op.Name + " (" + op.State().String() + ")"
}

// Queue is a serial first-in first-out queue of operations that represents
// the context owning the live UI tree. Operations run one at a time on the
// goroutine that calls [Queue.Run], in the order in which they were added,
// except that an operation never starts before its dependencies have
// finished. Other goroutines can add operations at any time; the lock only
// guards the list of pending operations.
type Queue struct {
	mu        sync.Mutex
	pending   []*Operation
	suspended bool
	draining  bool
	running   *Operation
}

// NewQueue returns a new empty [Queue].
func NewQueue() *Queue {
	return &Queue{}
}

// Add adds a new operation with the given name and function to the end of
// the queue. The operation does not start until all of the given
// dependencies have finished, and it is cancelled if any of them is cancelled.
func (q *Queue) Add(name string, fun func(), deps ...*Operation) *Operation {
	op := &Operation{Name: name, fun: fun, deps: deps, done: make(chan struct{}), queue: q}
	q.mu.Lock()
	q.pending = append(q.pending, op)
	q.mu.Unlock()
	return op
}

// Len returns the number of pending operations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run runs pending operations on the calling goroutine until the queue is
// empty, suspended, or only has operations waiting on dependencies that are
// not in it. It returns the number of operations that ran. If another call
// to Run is already draining the queue, it returns 0 immediately, and the
// active call runs the operations, including any added after this call.
// An operation that panics is cancelled, and so are its dependants.
func (q *Queue) Run() int {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return 0
	}
	q.draining = true
	q.mu.Unlock()

	var op *Operation
	defer func() {
		if r := recover(); r != nil {
			q.mu.Lock()
			q.draining = false
			q.running = nil
			if op != nil && op.state == Running {
				q.cancel(op)
			}
			q.mu.Unlock()
			panic(r)
		}
	}()

	n := 0
	for {
		op = q.next()
		if op == nil {
			return n
		}
		slog.Debug("mutation.Queue: running", "operation", op.Name)
		op.fun()
		q.mu.Lock()
		op.state = Finished
		q.running = nil
		q.mu.Unlock()
		close(op.done)
		n++
	}
}

// next removes and returns the first pending operation whose dependencies
// have all finished, marking it as running. Operations with a cancelled
// dependency are cancelled along the way. If no operation can run, it
// returns nil and ends the draining in the same critical section, so that
// an operation added right after is run by the next call to [Queue.Run].
func (q *Queue) next() *Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.suspended {
		q.draining = false
		return nil
	}
	for i := 0; i < len(q.pending); i++ {
		op := q.pending[i]
		ready := true
		cancelled := false
		for _, d := range op.deps {
			switch d.state {
			case Cancelled:
				cancelled = true
			case Finished:
			default:
				ready = false
			}
		}
		if cancelled {
			q.pending = slices.Delete(q.pending, i, i+1)
			q.cancel(op)
			i = -1 // restart, since earlier operations may depend on it
			continue
		}
		if !ready {
			continue
		}
		q.pending = slices.Delete(q.pending, i, i+1)
		op.state = Running
		q.running = op
		return op
	}
	if len(q.pending) > 0 {
		slog.Warn("mutation.Queue: pending operations are waiting on dependencies that are not queued", "pending", len(q.pending))
	}
	q.draining = false
	return nil
}

// cancel marks the given operation as cancelled. The lock must be held.
func (q *Queue) cancel(op *Operation) {
	op.state = Cancelled
	close(op.done)
	slog.Debug("mutation.Queue: cancelled", "operation", op.Name)
}

// Sync adds an operation with the given name and function, runs the queue,
// and waits until the operation has finished. It is how code on another
// goroutine marshals work onto the queue. It returns the operation, which
// is still pending if the queue is suspended. It must not be called from
// inside a running operation, which would wait forever; check
// [Queue.Running] first and call the function directly instead.
func (q *Queue) Sync(name string, fun func()) *Operation {
	op := q.Add(name, fun)
	q.Run()
	if q.IsSuspended() {
		return op
	}
	op.Wait()
	return op
}

// CancelAll cancels all pending operations. An operation that is
// already running is not affected, and finished ones are not undone.
func (q *Queue) CancelAll() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, op := range q.pending {
		q.cancel(op)
	}
	q.pending = nil
}

// Suspend stops [Queue.Run] from starting any more operations
// until [Queue.Resume] is called.
func (q *Queue) Suspend() {
	q.mu.Lock()
	q.suspended = true
	q.mu.Unlock()
}

// Resume allows operations to start again after [Queue.Suspend].
// It does not run them; call [Queue.Run] for that.
func (q *Queue) Resume() {
	q.mu.Lock()
	q.suspended = false
	q.mu.Unlock()
}

// Running returns the operation that is currently running, if any.
func (q *Queue) Running() *Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// IsSuspended returns whether the queue is suspended.
func (q *Queue) IsSuspended() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.suspended
}
