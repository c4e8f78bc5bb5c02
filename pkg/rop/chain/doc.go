// Package chain provides a fluent wrapper around lazy rop.Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, Recover and Finally
// behind a convenient Chain[T] type. Every step is deferred until the chain
// is collapsed with Finally or its Result is forced.
//
// Key operations:
// - Start/FromValue/FromFunc: begin a chain from a Result[T], a value or a computation
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/EnsureError: run side effects without changing the result
// - Recover: replace a failure with another Result
// - Finally: collapse the chain into a final value via handlers
package chain
