package domain

import "errors"

// Result is the uniform outcome of every repository operation: either a value
// or an error cause, never both. The zero Result is an error Result so a
// forgotten assignment cannot masquerade as success.
type Result[T any] struct {
	value T
	cause error
	ok    bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

func Err[T any](cause error) Result[T] {
	if cause == nil {
		cause = errors.New("unknown error")
	}
	return Result[T]{cause: cause}
}

func (r Result[T]) IsSuccess() bool { return r.ok }

// Value returns the success payload; the zero T when the Result is an error.
func (r Result[T]) Value() T { return r.value }

// ErrCause returns the failure cause, nil on success.
func (r Result[T]) ErrCause() error {
	if r.ok {
		return nil
	}
	if r.cause == nil {
		return errors.New("unknown error")
	}
	return r.cause
}

// Get unpacks the Result into Go's usual (value, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.ErrCause()
}

// Unit is the payload for operations that succeed without producing a value.
type Unit struct{}
