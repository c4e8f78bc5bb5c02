package rop

import (
	"errors"
	"fmt"
)

var (
	ErrNilThunk   = errors.New("rop: nil thunk")
	ErrNilValue   = errors.New("rop: nil value")
	ErrNilError   = errors.New("rop: nil error")
	ErrNilResult  = errors.New("rop: nil result")
	ErrNotPresent = errors.New("rop: value not present")
	ErrTap        = errors.New("rop: error in tap")
)

const wrappedErrorMessage = "rop: thrown checked error, wrapped in runtime error"

// WrappedError carries an error returned by a computation built with OfSneakyThrows.
type WrappedError struct {
	Cause error
}

func (e *WrappedError) Error() string {
	return wrappedErrorMessage
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("rop: panic: %v", e.Value)
}

// SuppressedError is a primary error with secondary errors attached for diagnostics.
// It reads and unwraps as the primary; the secondaries are reachable through Suppressed.
type SuppressedError struct {
	Err        error
	Suppressed []error
}

func (e *SuppressedError) Error() string {
	return e.Err.Error()
}

func (e *SuppressedError) Unwrap() error {
	return e.Err
}

// Suppress attaches secondary errors to primary. Nil secondaries are skipped;
// an existing SuppressedError is extended into a new one.
func Suppress(primary error, secondary ...error) error {
	if IsNil(primary) {
		return nil
	}

	var base []error
	if se, ok := primary.(*SuppressedError); ok {
		primary = se.Err
		base = se.Suppressed
	}

	all := make([]error, 0, len(base)+len(secondary))
	all = append(all, base...)
	for _, s := range secondary {
		if !IsNil(s) {
			all = append(all, s)
		}
	}
	if len(all) == 0 {
		return primary
	}

	return &SuppressedError{Err: primary, Suppressed: all}
}

// Suppressed returns the secondary errors attached to err, if any.
func Suppressed(err error) []error {
	var se *SuppressedError
	if errors.As(err, &se) {
		return se.Suppressed
	}
	return nil
}

// Primary strips suppression wrappers and returns the error that is propagating.
func Primary(err error) error {
	for {
		se, ok := err.(*SuppressedError)
		if !ok {
			return err
		}
		err = se.Err
	}
}
