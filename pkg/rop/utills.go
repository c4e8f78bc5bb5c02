package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens joined errors and the suppressed errors of err into one slice,
// primary first.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if se, ok := err.(*SuppressedError); ok {
		return append(GetErrors(se.Err), se.Suppressed...)
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// capture runs fn and turns a panic into a failed outcome.
func capture[T any](fn func() (T, error)) (o outcome[T]) {
	defer func() {
		if p := recover(); p != nil {
			o = failed[T](panicError(p))
		}
	}()

	v, err := fn()
	if err != nil {
		return failed[T](err)
	}
	return succeeded(v)
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p}
}
