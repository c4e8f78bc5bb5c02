package rop

import "reflect"

// SameOutcome reports whether r and other have structurally equal outcomes.
//
// It FORCES BOTH Results, running their computations if they are not cached yet.
//
// Two successes are the same when their values are reflect.DeepEqual. Two
// failures are the same when their primary errors (see Primary) have the same
// concrete type and message; they need not be the same instance. A success
// and a failure are never the same.
func (r Result[T]) SameOutcome(other Result[T]) bool {
	a, b := r.force(), other.force()

	switch {
	case a.err == nil && b.err == nil:
		return reflect.DeepEqual(a.value, b.value)
	case a.err != nil && b.err != nil:
		return sameError(a.err, b.err)
	default:
		return false
	}
}

func sameError(a, b error) bool {
	a, b = Primary(a), Primary(b)
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Error() == b.Error()
}
