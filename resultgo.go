// Package resultgo provides Result and Option container types for Go.
// A Result holds either a success value or an error; an Option holds a value
// or nothing. Wrap and WrapAsync convert fallible computations, including
// ones that panic, into plain Result values that never propagate a failure.
//
// The root package re-exports the common surface of pkg/result, pkg/option
// and pkg/future for convenience; the subpackages remain usable directly.
package resultgo

import (
	"github.com/adibhanna/resultgo/pkg/future"
	"github.com/adibhanna/resultgo/pkg/option"
	"github.com/adibhanna/resultgo/pkg/result"
)

// Re-export types for convenience
type (
	// Result represents either a success value or an error.
	Result[T any] = result.Result[T]
	// Option represents an optional value.
	Option[T any] = option.Option[T]
	// Future is the pending outcome of a computation started with Go.
	Future[T any] = future.Future[T]
	// PanicError is the error stored when a wrapped computation panics.
	PanicError = result.PanicError
)

// Ok creates a successful Result with the given value.
func Ok[T any](value T) Result[T] {
	return result.Ok(value)
}

// Err creates a failed Result with the given error.
func Err[T any](err error) Result[T] {
	return result.Err[T](err)
}

// From converts a conventional (value, error) return pair into a Result.
func From[T any](value T, err error) Result[T] {
	return result.From(value, err)
}

// Wrap invokes fn and captures its outcome, including panics, as a Result.
func Wrap[T any](fn func() (T, error)) Result[T] {
	return result.Wrap(fn)
}

// WrapAsync runs fn on its own goroutine and blocks until it settles.
func WrapAsync[T any](fn func() (T, error)) Result[T] {
	return result.WrapAsync(fn)
}

// Some creates an Option holding the given value.
func Some[T any](value T) Option[T] {
	return option.Some(value)
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return option.None[T]()
}

// Go starts fn on a new goroutine and returns a Future for its outcome.
func Go[T any](fn func() (T, error)) *Future[T] {
	return future.Go(fn)
}
