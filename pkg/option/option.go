// Package option provides an Option type for values that may be absent.
// An Option either holds a value or it does not; absence is carried by the
// type itself rather than by nil pointers or sentinel values.
package option

import "fmt"

// Option represents an optional value. An Option is immutable after
// construction and safe to share across goroutines.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an Option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Wrap adapts a nullable pointer into an Option. A nil pointer yields None,
// anything else yields Some of the pointed-to value.
func Wrap[T any](value *T) Option[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

// From converts a conventional (value, ok) pair into an Option.
func From[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the held value. Calling Unwrap on an empty Option is a
// contract violation and panics.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("called Unwrap on a None Option")
	}
	return o.value
}

// UnwrapOr returns the held value or the provided default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.ok {
		return o.value
	}
	return defaultValue
}

// Expect returns the held value. If the Option is empty it panics with the
// given message.
func (o Option[T]) Expect(message string) T {
	if !o.ok {
		panic(fmt.Sprintf("%s - Option is None", message))
	}
	return o.value
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Ptr returns a pointer to a copy of the held value, or nil if the Option is
// empty. It is the inverse of Wrap.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}
