// Package future runs a fallible computation on its own goroutine and hands
// back a handle that settles exactly once with a result.Result.
package future

import (
	"context"

	"github.com/adibhanna/resultgo/pkg/result"
)

// Future is the pending outcome of a computation started with Go. It settles
// exactly once; all waiters observe the same settled Result.
type Future[T any] struct {
	done chan struct{}
	res  result.Result[T]
}

// Go starts fn on a new goroutine and returns a Future for its outcome.
// Errors and panics inside fn are contained exactly as in result.Wrap.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		f.res = result.Wrap(fn)
		close(f.done)
	}()

	return f
}

// Wait blocks until the computation settles and returns its Result. Wait may
// be called any number of times, from any goroutine.
func (f *Future[T]) Wait() result.Result[T] {
	<-f.done
	return f.res
}

// Await blocks until the computation settles or ctx is done, whichever comes
// first. When ctx wins, Await returns Err(ctx.Err()); the computation itself
// keeps running and a later Wait or Await still observes its outcome.
func (f *Future[T]) Await(ctx context.Context) result.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return result.Err[T](ctx.Err())
	}
}

// Done returns a channel that is closed when the computation has settled,
// for use in select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
