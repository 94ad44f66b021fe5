// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/later"
)

var errBoom = errors.New("boom")

func TestOkPredicates(t *testing.T) {
	r := later.Ok(42)
	if !r.IsOk() {
		t.Fatal("IsOk() = false, want true")
	}
	if r.IsErr() {
		t.Fatal("IsErr() = true, want false")
	}
	v, ok := r.GetOk()
	if !ok || v != 42 {
		t.Fatalf("GetOk() = (%d, %v), want (42, true)", v, ok)
	}
	if err, ok := r.GetErr(); ok || err != nil {
		t.Fatalf("GetErr() = (%v, %v), want (nil, false)", err, ok)
	}
}

func TestFailPredicates(t *testing.T) {
	r := later.Fail[int](errBoom)
	if r.IsOk() {
		t.Fatal("IsOk() = true, want false")
	}
	if !r.IsErr() {
		t.Fatal("IsErr() = false, want true")
	}
	err, ok := r.GetErr()
	if !ok || !errors.Is(err, errBoom) {
		t.Fatalf("GetErr() = (%v, %v), want (boom, true)", err, ok)
	}
	if v, ok := r.GetOk(); ok || v != 0 {
		t.Fatalf("GetOk() = (%d, %v), want (0, false)", v, ok)
	}
}

func TestMatchResultOk(t *testing.T) {
	got := later.MatchResult(later.Ok(21),
		func(x int) int { return x * 2 },
		func(error) int { return -1 },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMatchResultErr(t *testing.T) {
	got := later.MatchResult(later.Fail[int](errBoom),
		func(x int) string { return "ok" },
		func(err error) string { return err.Error() },
	)
	if got != "boom" {
		t.Fatalf("got %q, want %q", got, "boom")
	}
}

func TestMapResult(t *testing.T) {
	r := later.MapResult(later.Ok(10), func(x int) int { return x + 1 })
	if v, _ := r.GetOk(); v != 11 {
		t.Fatalf("got %d, want 11", v)
	}

	e := later.MapResult(later.Fail[int](errBoom), func(x int) int { return x + 1 })
	if !e.IsErr() {
		t.Fatal("map over Fail produced success")
	}
}

func TestFlatMapResult(t *testing.T) {
	r := later.FlatMapResult(later.Ok(10), func(x int) later.Result[int] {
		return later.Ok(x * 2)
	})
	if v, _ := r.GetOk(); v != 20 {
		t.Fatalf("got %d, want 20", v)
	}

	e := later.FlatMapResult(later.Ok(10), func(int) later.Result[int] {
		return later.Fail[int](errBoom)
	})
	if err, _ := e.GetErr(); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want boom", err)
	}

	short := later.FlatMapResult(later.Fail[int](errBoom), func(int) later.Result[int] {
		t.Fatal("flatMap function ran on failure")
		return later.Ok(0)
	})
	if !short.IsErr() {
		t.Fatal("failure did not short-circuit")
	}
}

func TestMapErrResult(t *testing.T) {
	wrapped := later.MapErrResult(later.Fail[int](errBoom), func(err error) error {
		return errors.Join(errors.New("stage"), err)
	})
	if err, _ := wrapped.GetErr(); !errors.Is(err, errBoom) {
		t.Fatalf("wrapped error lost cause: %v", err)
	}

	same := later.MapErrResult(later.Ok(5), func(error) error {
		t.Fatal("mapErr function ran on success")
		return nil
	})
	if v, _ := same.GetOk(); v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}
