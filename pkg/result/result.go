// Package result provides a Result type for consistent error handling.
// This implements the Result pattern similar to Rust's Result: a value that
// holds either a success payload or an error, never both, so callers inspect
// outcomes explicitly instead of threading (T, error) pairs around.
package result

import "fmt"

// Result represents either a success value or an error. A Result is immutable
// after construction and safe to share across goroutines.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result with the given error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, ok: false}
}

// From converts a conventional (value, error) return pair into a Result.
// A nil error yields Ok(value), a non-nil error yields Err(err).
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk returns true if the Result contains a success value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result contains an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. Calling Unwrap on an error Result is a
// contract violation and panics.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on an Err Result")
	}
	return r.value
}

// UnwrapErr returns the error. Calling UnwrapErr on a successful Result is a
// contract violation and panics.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on an Ok Result")
	}
	return r.err
}

// UnwrapOr returns the success value or the provided default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Expect returns the success value. If the Result is an error it panics with
// the given message followed by the error text.
func (r Result[T]) Expect(message string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s - %v", message, r.err))
	}
	return r.value
}

// Get returns the success value and the error, whichever is present, in the
// conventional Go (T, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}
