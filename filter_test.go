// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools_test

import (
	"slices"
	"testing"

	"github.com/DutchGhost/Genertools"
)

func TestFilterKeepsOrder(t *testing.T) {
	it := genertools.Iterate(genertools.Filter(numbers(10, 20, 30), func(v int) bool {
		return v > 15
	}))

	got := slices.Collect(it.Seq())
	if !slices.Equal(got, []int{20, 30}) {
		t.Fatalf("got %v, want [20 30]", got)
	}
}

func TestFilterAfterTransform(t *testing.T) {
	it := genertools.Iterate(genertools.Filter(
		genertools.Transform(numbers(10, 20, 30), func(v int) int { return v * 10 }),
		func(v int) bool { return v > 199 },
	))

	if v, ok := it.Next(); !ok || v != 200 {
		t.Fatalf("got (%d, %v), want (200, true)", v, ok)
	}
	if v, ok := it.Next(); !ok || v != 300 {
		t.Fatalf("got (%d, %v), want (300, true)", v, ok)
	}
	if v, ok := it.Next(); ok {
		t.Fatalf("got (%d, true), want exhaustion", v)
	}
}

func TestFilterRejectsManyInOneResume(t *testing.T) {
	co := genertools.Generate(func(yield func(int) bool) string {
		for i := 1; i <= 100; i++ {
			if !yield(i) {
				return "stopped"
			}
		}
		return "end"
	})
	it := genertools.Iterate(genertools.Filter(co, func(v int) bool {
		return v%50 == 0
	}))

	got := slices.Collect(it.Seq())
	if !slices.Equal(got, []int{50, 100}) {
		t.Fatalf("got %v, want [50 100]", got)
	}
	r, ok := it.Result()
	if !ok || r != "end" {
		t.Fatalf("Result = (%q, %v), want (\"end\", true)", r, ok)
	}
}

func TestFilterNeverAccepts(t *testing.T) {
	co := genertools.Generate(func(yield func(int) bool) int {
		for i := range 5 {
			if !yield(i) {
				return -1
			}
		}
		return 99
	})
	it := genertools.Iterate(genertools.Filter(co, func(v int) bool { return false }))

	if v, ok := it.Next(); ok {
		t.Fatalf("got (%d, true), want immediate exhaustion", v)
	}
	r, ok := it.Result()
	if !ok || r != 99 {
		t.Fatalf("Result = (%d, %v), want (99, true)", r, ok)
	}
}

func TestFilterStopPropagates(t *testing.T) {
	cleaned := false
	co := genertools.Generate(func(yield func(int) bool) struct{} {
		defer func() { cleaned = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return struct{}{}
			}
		}
	})
	it := genertools.Iterate(genertools.Filter(co, func(v int) bool { return v%2 == 0 }))

	it.Next()
	it.Stop()
	if !cleaned {
		t.Fatal("Stop did not reach the inner computation")
	}
}

func TestFilterDeepNesting(t *testing.T) {
	co := genertools.Filter(
		genertools.Transform(
			genertools.Filter(numbers(1, 2, 3, 4, 5, 6), func(v int) bool { return v%2 == 0 }),
			func(v int) int { return v * v },
		),
		func(v int) bool { return v > 4 },
	)

	got := slices.Collect(genertools.Iterate(co).Seq())
	if !slices.Equal(got, []int{16, 36}) {
		t.Fatalf("got %v, want [16 36]", got)
	}
}
