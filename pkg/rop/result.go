package rop

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Void is the payload of effect-only results.
type Void struct{}

// outcome is the realized form of a Result: exactly one of value or err is meaningful.
type outcome[T any] struct {
	value T
	err   error
}

func succeeded[T any](v T) outcome[T] {
	return outcome[T]{value: v}
}

func failed[T any](err error) outcome[T] {
	return outcome[T]{err: err}
}

// cell memoizes the first successful outcome of thunk.
// Failures are not cached, so a failing thunk runs again on every force.
type cell[T any] struct {
	thunk func() outcome[T]
	value atomic.Pointer[T]
}

func (c *cell[T]) force() outcome[T] {
	if v := c.value.Load(); v != nil {
		return succeeded(*v)
	}

	o := c.thunk()
	if o.err != nil {
		return o
	}
	if IsNil(o.value) {
		return failed[T](ErrNilValue)
	}

	v := o.value
	if !c.value.CompareAndSwap(nil, &v) {
		// another caller stored first; its value is the memoized one
		return succeeded(*c.value.Load())
	}
	return succeeded(v)
}

func (c *cell[T]) evaluated() bool {
	return c.value.Load() != nil
}

// Result is a deferred computation that yields either a value or an error.
//
// A Result is evaluated when forced (Get, UnsafeGet, IsSuccess, ...). The first
// successful value is cached and returned on every later force without running
// the computation again. A failed evaluation is not cached: forcing a failing
// Result runs its computation again each time.
//
// Copies of a Result share the same cache. All combinators return new Results.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	cell      *cell[T]
	failure   error
}

func deferred[T any](thunk func() outcome[T]) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cell:      &cell[T]{thunk: thunk},
	}
}

// Of wraps fn without calling it. A panic raised by fn is recovered when the
// Result is forced and becomes its error.
func Of[T any](fn func() T) Result[T] {
	if fn == nil {
		panic(ErrNilThunk)
	}
	return deferred(func() outcome[T] {
		return capture(func() (T, error) {
			return fn(), nil
		})
	})
}

// Try wraps a Go-style computation. The returned error is carried unchanged.
func Try[T any](fn func() (T, error)) Result[T] {
	if fn == nil {
		panic(ErrNilThunk)
	}
	return deferred(func() outcome[T] {
		return capture(fn)
	})
}

// OfSneakyThrows is like Try, but a returned error is wrapped in a *WrappedError
// whose cause is the original. Panics are carried as-is, as in Of.
func OfSneakyThrows[T any](fn func() (T, error)) Result[T] {
	if fn == nil {
		panic(ErrNilThunk)
	}
	return deferred(func() outcome[T] {
		var returned bool
		o := capture(func() (T, error) {
			v, err := fn()
			returned = true
			return v, err
		})
		if returned && o.err != nil {
			return failed[T](&WrappedError{Cause: o.err})
		}
		return o
	})
}

// OfVoid wraps an effect with no meaningful value.
func OfVoid(fn func()) Result[Void] {
	if fn == nil {
		panic(ErrNilThunk)
	}
	return Of(func() Void {
		fn()
		return Void{}
	})
}

// TryVoid wraps an effect that reports failure through its error.
func TryVoid(fn func() error) Result[Void] {
	if fn == nil {
		panic(ErrNilThunk)
	}
	return Try(func() (Void, error) {
		return Void{}, fn()
	})
}

// Success returns an already evaluated successful Result.
// It panics with ErrNilValue if v is a nil pointer or nil interface.
func Success[T any](v T) Result[T] {
	if IsNil(v) {
		panic(ErrNilValue)
	}
	r := deferred(func() outcome[T] {
		return succeeded(v)
	})
	r.cell.value.Store(&v)
	return r
}

// Unit returns the void success.
func Unit() Result[Void] {
	return Success(Void{})
}

// Failure returns a failed Result carrying err. It panics with ErrNilError if err is nil.
func Failure[T any](err error) Result[T] {
	if IsNil(err) {
		panic(ErrNilError)
	}
	r := deferred(func() outcome[T] {
		return failed[T](err)
	})
	r.failure = err
	return r
}

// FromOptional maps a comma-ok pair to a Result. Absence, including a nil v,
// fails with ErrNotPresent.
func FromOptional[T any](v T, ok bool) Result[T] {
	if !ok || IsNil(v) {
		return Failure[T](ErrNotPresent)
	}
	return Success(v)
}

// FromPointer succeeds with *p, or fails with ErrNotPresent when p is nil.
func FromPointer[T any](p *T) Result[T] {
	if p == nil {
		return Failure[T](ErrNotPresent)
	}
	return FromOptional(*p, true)
}

func (r Result[T]) force() outcome[T] {
	if r.cell == nil {
		return failed[T](ErrNilResult)
	}
	return r.cell.force()
}

// Get forces the Result and returns its value or error.
func (r Result[T]) Get() (T, error) {
	o := r.force()
	return o.value, o.err
}

// UnsafeGet forces the Result and returns its value, panicking with the carried error on failure.
func (r Result[T]) UnsafeGet() T {
	o := r.force()
	if o.err != nil {
		panic(o.err)
	}
	return o.value
}

// Err forces the Result and returns its error, nil on success.
func (r Result[T]) Err() error {
	return r.force().err
}

func (r Result[T]) IsSuccess() bool {
	return r.force().err == nil
}

func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// IsEmpty reports whether r is the zero Result. It does not force.
func (r Result[T]) IsEmpty() bool {
	return r.cell == nil
}

// IsEvaluated reports whether a successful value is cached. It does not force.
func (r Result[T]) IsEvaluated() bool {
	return r.cell != nil && r.cell.evaluated()
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// String describes the Result without forcing it.
func (r Result[T]) String() string {
	switch {
	case r.cell == nil:
		return "Result{empty}"
	case r.cell.evaluated():
		return fmt.Sprintf("Success{value=%v}", *r.cell.value.Load())
	case r.failure != nil:
		return fmt.Sprintf("Failure{error=%v}", r.failure)
	default:
		return "Result{deferred}"
	}
}
