package rop

// OrElse forces r and returns its value, or v if r failed.
func (r Result[T]) OrElse(v T) T {
	o := r.force()
	if o.err != nil {
		return v
	}
	return o.value
}

// OrElseGet forces r and returns its value, or the value of supplier if r failed.
// If the supplier fails too, the original error is returned with the supplier's
// error attached as suppressed.
func (r Result[T]) OrElseGet(supplier func() (T, error)) (T, error) {
	o := r.force()
	if o.err == nil {
		return o.value, nil
	}

	s := capture(supplier)
	if s.err != nil {
		var zero T
		return zero, Suppress(o.err, s.err)
	}
	return s.value, nil
}

// OrElseError forces r and returns its value, or err with the original error
// attached as suppressed. A nil err returns the original error.
func (r Result[T]) OrElseError(err error) (T, error) {
	o := r.force()
	if o.err == nil {
		return o.value, nil
	}
	if IsNil(err) {
		return o.value, o.err
	}
	return o.value, Suppress(err, o.err)
}

// OrElseMapError forces r and returns its value, or mapper applied to its error.
// A nil mapped error becomes ErrNilError with the original attached as suppressed.
func (r Result[T]) OrElseMapError(mapper func(error) error) (T, error) {
	o := r.force()
	if o.err == nil {
		return o.value, nil
	}
	if mapped := mapper(o.err); !IsNil(mapped) {
		return o.value, mapped
	}
	return o.value, Suppress(ErrNilError, o.err)
}

// ToOption forces r and returns its value and whether it succeeded. The error is discarded.
func (r Result[T]) ToOption() (T, bool) {
	o := r.force()
	return o.value, o.err == nil
}
