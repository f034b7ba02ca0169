package future

import (
	"context"
	"fmt"
	"sync"
)

// ErrSource tells where an Await failure came from.
type ErrSource uint8

const (
	FromUnknown ErrSource = iota
	FromResult
	FromContext
)

func (s ErrSource) String() string {
	switch s {
	case FromResult:
		return "result"
	case FromContext:
		return "context"
	default:
		return "unknown"
	}
}

// AwaitError is returned by Await when the caller's context ends first.
type AwaitError struct {
	Source ErrSource
	Err    error
}

func (e *AwaitError) Error() string {
	return fmt.Sprintf("await failed [%s]: %v", e.Source, e.Err)
}

func (e *AwaitError) Unwrap() error {
	return e.Err
}

// Future holds the outcome of a single asynchronous operation. The first
// call to Complete wins; later calls are ignored.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  *T
	err  error
}

func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete records either a value or an error. It reports whether this
// call was the one that settled the future.
func (f *Future[T]) Complete(val *T, err error) bool {
	settled := false
	f.once.Do(func() {
		if err != nil {
			val = nil
		}
		f.val, f.err = val, err
		close(f.done)
		settled = true
	})
	return settled
}

// Done is closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends. The operation's own
// error is returned unchanged; a context expiry is wrapped in AwaitError.
func (f *Future[T]) Await(ctx context.Context) (*T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, &AwaitError{Source: FromContext, Err: ctx.Err()}
	}
}
