package result

import "fmt"

// PanicError is the error stored in a Result when a computation passed to
// Wrap or WrapAsync panics. Value holds the recovered panic value verbatim.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was itself an error, so errors.Is and
// errors.As see through the recovery boundary.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Wrap invokes fn and captures its outcome as a Result. A returned error
// becomes Err, and a panic inside fn is recovered and becomes Err with a
// *PanicError payload. No failure escapes the call.
func Wrap[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](&PanicError{Value: r})
		}
	}()

	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// WrapAsync runs fn on its own goroutine and blocks until it settles,
// returning the outcome with the same containment guarantees as Wrap. The
// caller observes exactly one of a value or an error, never a panic.
func WrapAsync[T any](fn func() (T, error)) Result[T] {
	resultCh := make(chan Result[T], 1)

	go func() {
		resultCh <- Wrap(fn)
	}()

	return <-resultCh
}
