package rop

import "errors"

// FlatMap returns a Result that forces r and, on success, forces the Result
// produced by f. Nothing is evaluated until the returned Result is forced.
// A failure of r is propagated unchanged and f is not called.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	return deferred(func() outcome[U] {
		o := r.force()
		if o.err != nil {
			return failed[U](o.err)
		}

		next := capture(func() (Result[U], error) {
			return f(o.value), nil
		})
		if next.err != nil {
			return failed[U](next.err)
		}
		return next.value.force()
	})
}

// Map applies f to the value of r. A panic in f fails the Result.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	return FlatMap(r, func(v T) Result[U] {
		return Of(func() U { return f(v) })
	})
}

// MapTry applies a Go-style f to the value of r; its error fails the Result.
func MapTry[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	return FlatMap(r, func(v T) Result[U] {
		return Try(func() (U, error) { return f(v) })
	})
}

// As replaces the value of a successful r with v.
func As[T, U any](r Result[T], v U) Result[U] {
	return Map(r, func(T) U { return v })
}

// Fold forces r and reduces it with onSuccess or onFailure.
func Fold[T, U any](r Result[T], onSuccess func(T) U, onFailure func(error) U) U {
	o := r.force()
	if o.err != nil {
		return onFailure(o.err)
	}
	return onSuccess(o.value)
}

// MapError replaces the error of a failed r with f(err). A panic in f, or a nil
// error returned by it, replaces the original error instead.
func (r Result[T]) MapError(f func(error) error) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err == nil {
			return o
		}

		mapped := capture(func() (error, error) {
			return f(o.err), nil
		})
		if mapped.err != nil {
			return failed[T](mapped.err)
		}
		if IsNil(mapped.value) {
			return failed[T](ErrNilError)
		}
		return failed[T](mapped.value)
	})
}

// Tap calls cb with the value of a successful r and passes the value through.
// If cb panics, the Result fails with that error and ErrTap attached as suppressed.
func (r Result[T]) Tap(cb func(T)) Result[T] {
	return r.TapTry(func(v T) error {
		cb(v)
		return nil
	})
}

// TapTry is Tap for callbacks that report failure through their error.
func (r Result[T]) TapTry(cb func(T) error) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err != nil {
			return o
		}

		effect := capture(func() (Void, error) {
			return Void{}, cb(o.value)
		})
		if effect.err != nil {
			return failed[T](Suppress(effect.err, ErrTap))
		}
		return o
	})
}

// TapError calls cb with the error of a failed r and leaves the outcome as is.
// A panic in cb is attached to the error as suppressed.
func (r Result[T]) TapError(cb func(error)) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err == nil {
			return o
		}

		effect := capture(func() (Void, error) {
			cb(o.err)
			return Void{}, nil
		})
		if effect.err != nil {
			return failed[T](Suppress(o.err, effect.err))
		}
		return o
	})
}

// CatchAll replaces a failure of r with the Result returned by handler.
// The handler runs only when r fails.
func (r Result[T]) CatchAll(handler func(error) Result[T]) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err == nil {
			return o
		}
		return recoverWith(func() Result[T] { return handler(o.err) })
	})
}

// CatchAllFunc is CatchAll for handlers that ignore the error.
func (r Result[T]) CatchAllFunc(handler func() Result[T]) Result[T] {
	return r.CatchAll(func(error) Result[T] { return handler() })
}

// CatchAllWith replaces a failure of r with fallback, forced only when r fails.
func (r Result[T]) CatchAllWith(fallback Result[T]) Result[T] {
	return r.CatchAll(func(error) Result[T] { return fallback })
}

// CatchSome is CatchAll restricted to failures whose error is an E.
// Suppressed errors are not considered. Other failures pass through unchanged.
func CatchSome[E error, T any](r Result[T], handler func(E) Result[T]) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err == nil {
			return o
		}

		var target E
		if !errors.As(Primary(o.err), &target) {
			return o
		}
		return recoverWith(func() Result[T] { return handler(target) })
	})
}

// CatchSomeFunc is CatchSome for handlers that ignore the error.
func CatchSomeFunc[E error, T any](r Result[T], handler func() Result[T]) Result[T] {
	return CatchSome(r, func(E) Result[T] { return handler() })
}

// CatchIs is CatchAll restricted to failures matching target with errors.Is.
func CatchIs[T any](r Result[T], target error, handler func(error) Result[T]) Result[T] {
	return deferred(func() outcome[T] {
		o := r.force()
		if o.err == nil || !errors.Is(Primary(o.err), target) {
			return o
		}
		return recoverWith(func() Result[T] { return handler(o.err) })
	})
}

func recoverWith[T any](handler func() Result[T]) outcome[T] {
	next := capture(func() (Result[T], error) {
		return handler(), nil
	})
	if next.err != nil {
		return failed[T](next.err)
	}
	return next.value.force()
}
