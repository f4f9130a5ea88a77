package direct

import (
	"context"
	"errors"
	"testing"

	"github.com/tibrom/async-result-ext/pkg/outcome"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := Map(ctx, Succeed[int, string](2), func(ctx context.Context, v int) int { return v * 2 })
	if !res.IsSuccess() || res.Value() != 4 {
		t.Fatalf("expected success with 4, got: success=%v, val=%v", res.IsSuccess(), res.Value())
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	res := Map(ctx, Fail[int]("x"), func(ctx context.Context, v int) int {
		called = true
		return v
	})
	if res.IsSuccess() || res.Err() != "x" {
		t.Fatalf("expected failure 'x', got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
	if called {
		t.Fatalf("onSuccess must not be called on failure")
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := AndThen(ctx, Succeed[int, string](2), func(ctx context.Context, v int) outcome.Outcome[int, string] {
		return Succeed[int, string](v * 3)
	})
	if !res.IsSuccess() || res.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v", res.IsSuccess(), res.Value())
	}

	res = AndThen(ctx, Fail[int]("e"), func(ctx context.Context, v int) outcome.Outcome[int, string] {
		return Succeed[int, string](v)
	})
	if res.IsSuccess() || res.Err() != "e" {
		t.Fatalf("expected failure 'e', got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestMapOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := MapOr(ctx, Succeed[int, string](3), -1, func(ctx context.Context, v int) int { return v + 1 })
	if v != 4 {
		t.Fatalf("expected 4, got %v", v)
	}
	v = MapOr(ctx, Fail[int]("e"), -1, func(ctx context.Context, v int) int { return v + 1 })
	if v != -1 {
		t.Fatalf("expected default -1, got %v", v)
	}
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := MapOrElse(ctx, Fail[int]("e"),
		func(ctx context.Context, err string) string { return "fallback:" + err },
		func(ctx context.Context, v int) string { return "ok" })
	if v != "fallback:e" {
		t.Fatalf("expected 'fallback:e', got %v", v)
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := MapErr(ctx, Fail[int]("fail"), func(ctx context.Context, err string) int { return len(err) })
	if res.IsSuccess() || res.Err() != 4 {
		t.Fatalf("expected failure 4, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}

	called := false
	keep := MapErr(ctx, Succeed[int, string](10), func(ctx context.Context, err string) int {
		called = true
		return 0
	})
	if !keep.IsSuccess() || keep.Value() != 10 || called {
		t.Fatalf("expected untouched success with 10, got: val=%v, called=%v", keep.Value(), called)
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seen := 0
	o := Succeed[int, string](9)
	res := Inspect(ctx, o, func(ctx context.Context, v int) { seen = v })
	if seen != 9 || res.Id() != o.Id() {
		t.Fatalf("expected side effect with 9 and the original outcome back, got seen=%v", seen)
	}
}

func TestInspectErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var seen string
	o := Fail[int]("oops")
	res := InspectErr(ctx, o, func(ctx context.Context, err string) { seen = err })
	if seen != "oops" || res.Id() != o.Id() {
		t.Fatalf("expected side effect with 'oops' and the original outcome back, got seen=%v", seen)
	}
}

func TestIsOkAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	if !IsOkAnd(ctx, Succeed[int, string](5), func(ctx context.Context, v int) bool { return v > 3 }) {
		t.Fatalf("expected true")
	}
	if IsOkAnd(ctx, Fail[int]("e"), func(ctx context.Context, v int) bool { return true }) {
		t.Fatalf("expected false on failure")
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Try(ctx, Succeed[int, error](4), func(ctx context.Context, v int) (int, error) { return v * v, nil })
	if !res.IsSuccess() || res.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v", res.IsSuccess(), res.Value())
	}

	res = Try(ctx, Succeed[int, error](4), func(ctx context.Context, v int) (int, error) {
		return 0, errors.New("try-error")
	})
	if res.IsSuccess() || res.Err() == nil || res.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := Finally(ctx, Succeed[int, string](2),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err string) string { return "err" })
	if v != "ok" {
		t.Fatalf("expected 'ok', got %v", v)
	}

	v = Finally(ctx, Fail[int]("boom"),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err string) string { return "err:" + err })
	if v != "err:boom" {
		t.Fatalf("expected 'err:boom', got %v", v)
	}
}
