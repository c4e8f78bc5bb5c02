// Package rop provides Result[T], a lazy and memoizing railway value: a
// computation that is run only when forced and that ends on either the
// success track (a value) or the failure track (an error).
//
// Highlights:
// - Of/Try/OfSneakyThrows/OfVoid/TryVoid: wrap a computation without running it
// - Success/Failure/Unit/FromOptional/FromPointer: build realized Results
// - Get/UnsafeGet/IsSuccess/Err: force the computation
// - FlatMap/Map/MapTry/As/MapError: transform one track, short-circuit the other
// - Tap/TapTry/TapError: side effects that never drop an error
// - CatchAll/CatchSome/CatchIs: recover from failures
// - OrElse/OrElseGet/OrElseError/OrElseMapError/ToOption/Fold: extract a value
// - SameOutcome: structural equality, which forces both operands
//
// Successful values are cached; failures are not, so forcing a failing
// Result runs its computation again. Errors raised by callbacks are attached
// to the propagating error with Suppress and can be read back with Suppressed.
package rop
