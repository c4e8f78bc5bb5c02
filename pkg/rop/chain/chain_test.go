package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/lazyrop/pkg/rop"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := rop.Success(10)
	c := Start(ctx, base)
	out := c.Result()
	if !out.IsSuccess() || out.UnsafeGet() != 10 {
		t.Fatalf("expected success with 10, got %v, err=%v", out, out.Err())
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if v, err := out.Get(); err != nil || v != 7 {
		t.Fatalf("expected success with 7, got val=%v, err=%v", v, err)
	}
}

func TestFromFunc_IsLazy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	c := FromFunc(ctx, func(ctx context.Context) (int, error) {
		calls++
		return 3, nil
	})
	c2 := Map(c, func(ctx context.Context, v int) int { return v * 3 })
	if calls != 0 {
		t.Fatalf("expected no evaluation before forcing, got %d calls", calls)
	}
	if v := c2.Result().UnsafeGet(); v != 9 || calls != 1 {
		t.Fatalf("expected 9 after one call, got %d after %d calls", v, calls)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Failure[int](errors.New("boom")))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	})
	out := c2.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_CanceledContextFails(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	c := FromValue(ctx, 1)
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	cancel()

	out := c2.Result()
	if !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", out.Err())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called once the context is done")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	c2 := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	})
	if v, err := c2.Result().Get(); err != nil || v != "val_3" {
		t.Fatalf("expected success 'val_3', got val=%v err=%v", v, err)
	}

	// error path
	c4 := ThenTry(FromValue(ctx, 9), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	})
	if err := c4.Result().Err(); err == nil || err.Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got err=%v", err)
	}

	// short-circuit on failure input
	c6 := ThenTry(Start(ctx, rop.Failure[int](errors.New("bad"))), func(ctx context.Context, v int) (string, error) {
		return "ignored", nil
	})
	if err := c6.Result().Err(); err == nil || err.Error() != "bad" {
		t.Fatalf("expected failure 'bad', got err=%v", err)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c2 := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	if v, err := c2.Result().Get(); err != nil || v != "n:5" {
		t.Fatalf("expected success 'n:5', got val=%v err=%v", v, err)
	}

	c4 := Map(Start(ctx, rop.Failure[int](errors.New("oops"))), func(ctx context.Context, v int) string { return "ignored" })
	if err := c4.Result().Err(); err == nil || err.Error() != "oops" {
		t.Fatalf("expected failure 'oops', got err=%v", err)
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := 0
	out := FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called++ }).Result()
	if called != 0 {
		t.Fatalf("Ensure must wait until the chain is forced")
	}
	if v, err := out.Get(); err != nil || v != 11 {
		t.Fatalf("expected success with 11, got val=%v err=%v", v, err)
	}
	if called != 1 {
		t.Fatalf("expected Ensure to invoke onSuccess once, got %d", called)
	}

	// failure path should not call onSuccess
	called = 0
	out2 := Start(ctx, rop.Failure[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { called++ }).Result()
	if err := out2.Err(); err == nil || err.Error() != "x" {
		t.Fatalf("expected failure 'x', got err=%v", err)
	}
	if called != 0 {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestEnsureErrorAndRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var logged error
	c := Start(ctx, rop.Failure[int](errors.New("x"))).
		EnsureError(func(ctx context.Context, err error) { logged = err }).
		Recover(func(ctx context.Context, err error) rop.Result[int] { return rop.Success(-1) })

	if v := c.Result().UnsafeGet(); v != -1 {
		t.Fatalf("expected recovered -1, got %d", v)
	}
	if logged == nil || logged.Error() != "x" {
		t.Fatalf("expected EnsureError to see 'x', got %v", logged)
	}
}

func TestFinally_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(FromValue(ctx, 2),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail" },
	)
	if s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}

	f := Finally(Start(ctx, rop.Failure[int](errors.New("e"))),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail" },
	)
	if f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
}
