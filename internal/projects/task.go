package projects

import (
	"context"
	"sync"
)

// Task is a load running in its own goroutine.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	result Result
}

// Start runs Load in the background and returns immediately. The caller
// must not touch the container until the task is done.
func (l *Loader) Start(ctx context.Context, view View) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		t.result = l.Load(ctx, view)
	}()
	return t
}

// Done is closed once the load has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the load finishes and returns its result.
func (t *Task) Wait() Result {
	<-t.done
	return t.result
}

// Cancel aborts an in-flight load. It is safe to call more than once.
func (t *Task) Cancel() {
	t.once.Do(t.cancel)
}
