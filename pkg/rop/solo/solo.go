package solo

import (
	"context"
	"errors"

	"github.com/ib-77/lazyrop/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Failure[T](err)
}

// Lazy defers a context-aware computation until the Result is forced.
func Lazy[T any](ctx context.Context, compute func(ctx context.Context) (T, error)) rop.Result[T] {
	return rop.Try(func() (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return compute(ctx)
	})
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return Switch(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Failure[T](errors.New(errMsg))
		}
		return rop.Success(in)
	})
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	return rop.Try(func() (T, error) {
		// collected per forcing; failures are re-evaluated on every force
		var err error
		return Join(
			ctx,
			input,
			breakOnError,
			func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

				if current.IsFailure() {
					e := rop.GetErrors(err)
					e = append(e, current.Err())
					err = errors.Join(e...)
				}

				if rop.IsNil(err) {
					return current
				}

				return rop.Failure[T](err)
			},
			inputsF...,
		).Get()
	})
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.FlatMap(input, func(r In) rop.Result[Out] {
		if err := ctx.Err(); err != nil {
			return rop.Failure[Out](err)
		}
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return rop.Of(func() Out { return onSuccess(ctx, r) })
	})
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return rop.Try(func() (Out, error) { return onTryExecute(ctx, r) })
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	return input.Tap(func(T) {
		onSuccess(ctx, input)
	})
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	return input.Tap(func(T) {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	})
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	return input.
		TapError(func(err error) { onError(ctx, err) }).
		Tap(func(r T) { onSuccess(ctx, r) })
}

// DoubleMap maps the value with onSuccess or the error with onError.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) error) rop.Result[Out] {

	return Map(ctx, input.MapError(func(err error) error { return onError(ctx, err) }), onSuccess)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return Switch(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Failure[T](err)
		}
		return rop.Success(in)
	})
}

func Recover[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	return input.CatchAll(func(err error) rop.Result[T] {
		return onError(ctx, err)
	})
}

// Canceled forces input and reports whether it failed because a context was done.
func Canceled[T any](input rop.WithError[T]) bool {
	return !input.IsSuccess() && rop.IsCancellationError(input.Err())
}

// Finally forces input and reduces it to a concrete value.
func Finally[In, Out any](ctx context.Context, input rop.Forcer[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	r, err := input.Get()
	if err != nil {
		return onError(ctx, err)
	}
	return onSuccess(ctx, r)
}

// Join feeds input through inputsF, reducing each step with concat. With
// breakOnError the first failing step ends the join. Nothing runs until the
// returned Result is forced.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	return rop.Try(func() (T, error) {
		return join(ctx, input, breakOnError, concat, inputsF).Get()
	})
}

func join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF []func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if err := ctx.Err(); err != nil {
		return rop.Failure[T](err)
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if err := ctx.Err(); err != nil {
				return rop.Failure[T](err)
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
