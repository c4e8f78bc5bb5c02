// Package solo contains single-value, context-aware ROP primitives that
// operate on lazy rop.Result[T] values. Every step is deferred: nothing runs
// until the returned Result is forced, and a step whose context is already
// done when forced fails with ctx.Err().
//
// Highlights:
// - Succeed/Fail/Lazy: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform the success track, or both tracks
// - Try: call a function (Out, error) and convert error to failure
// - FailOnError: keep the value unless a check returns an error
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Recover: replace a failure with another Result
// - Join: run several steps over one input, optionally stopping at the first failure
// - Canceled: tell a context cancellation apart from an ordinary failure
// - Finally: reduce to a concrete value via success/error handlers
package solo
