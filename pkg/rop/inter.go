package rop

// Forcer is anything that can be forced into a value or an error.
type Forcer[T any] interface {
	// Get forces the computation
	Get() (T, error)
}

// WithError defines an interface for types that force to a value or an error
type WithError[T any] interface {
	Forcer[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

var _ WithError[int] = Result[int]{}
