// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools_test

import (
	"slices"
	"testing"

	"github.com/DutchGhost/Genertools"
)

func TestFromSeq(t *testing.T) {
	it := genertools.Iterate(genertools.FromSeq(slices.Values([]int{1, 2, 3})))

	got := slices.Collect(it.Seq())
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if _, ok := it.Result(); !ok {
		t.Fatal("Result not recorded after exhaustion")
	}
}

func TestFromSeqInfinite(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	it := genertools.Iterate(genertools.FromSeq(naturals))

	for want := 0; want < 4; want++ {
		if v, ok := it.Next(); !ok || v != want {
			t.Fatalf("got (%d, %v), want (%d, true)", v, ok, want)
		}
	}
}

func TestFromSeqStopUnwinds(t *testing.T) {
	cleaned := false
	seq := func(yield func(int) bool) {
		defer func() { cleaned = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	it := genertools.Iterate(genertools.FromSeq(seq))

	it.Next()
	it.Stop()
	if !cleaned {
		t.Fatal("Stop did not unwind the sequence")
	}
}

func TestFromSource(t *testing.T) {
	cur := genertools.NewSliceCursor([]string{"a", "b", "c"})
	it := genertools.Iterate(genertools.FromSource[string](cur))

	got := slices.Collect(it.Seq())
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", got)
	}
	if _, ok := cur.Next(); ok {
		t.Fatal("cursor not exhausted")
	}
}

func TestFromSourcePullsExactly(t *testing.T) {
	cur := genertools.NewSliceCursor([]int{1, 2, 3, 4, 5})
	it := genertools.Iterate(genertools.FromSource[int](cur))

	it.Next()
	it.Next()

	// Only two items were pulled; the cursor continues from the third.
	if v, ok := cur.Next(); !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}
}
