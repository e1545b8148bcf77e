package list

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in, out []string
	}{
		{nil, nil},
		{[]string{"a"}, []string{"a"}},
		{[]string{"a", "b"}, []string{"b", "a"}},
		{[]string{"a", "b", "c", "d", "e"}, []string{"e", "d", "c", "b", "a"}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			h, _ := newRing(test.in...)
			h.Reverse()
			requireRing(t, h)
			require.Equal(t, test.out, keys(h))

			h.Reverse()
			requireRing(t, h)
			require.Equal(t, test.in, keys(h))
		})
	}
}

func TestSwapPairs(t *testing.T) {
	tests := []struct {
		in, out []string
	}{
		{nil, nil},
		{[]string{"1"}, []string{"1"}},
		{[]string{"1", "2"}, []string{"2", "1"}},
		{[]string{"1", "2", "3"}, []string{"2", "1", "3"}},
		{[]string{"1", "2", "3", "4"}, []string{"2", "1", "4", "3"}},
		{[]string{"1", "2", "3", "4", "5"}, []string{"2", "1", "4", "3", "5"}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			h, items := newRing(test.in...)
			h.SwapPairs()
			requireRing(t, h)
			require.Equal(t, test.out, keys(h))

			// Nodes are moved, not rewritten.
			for _, it := range items {
				require.Equal(t, test.in[it.idx], it.key)
			}
		})
	}
}

func byKey(a, b *item) int {
	return cmp.Compare(a.key, b.key)
}

func TestSortFunc(t *testing.T) {
	tests := []struct {
		in, out []string
	}{
		{nil, nil},
		{[]string{"a"}, []string{"a"}},
		{[]string{"b", "a"}, []string{"a", "b"}},
		{[]string{"c", "a", "b"}, []string{"a", "b", "c"}},
		{[]string{"dog", "cat", "", "bee", "cat", "ant"}, []string{"", "ant", "bee", "cat", "cat", "dog"}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			h, _ := newRing(test.in...)
			h.SortFunc(byKey)
			requireRing(t, h)
			require.Equal(t, test.out, keys(h))
		})
	}
}

func TestSortFuncStable(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := range 64 {
		in := make([]string, n)
		for i := range in {
			in[i] = string(rune('a' + r.IntN(4)))
		}

		h, _ := newRing(in...)
		h.SortFunc(byKey)
		requireRing(t, h)

		sorted := slices.Collect(h.Owners())
		require.True(t, slices.IsSortedFunc(sorted, byKey))
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].key == sorted[i].key {
				require.Less(t, sorted[i-1].idx, sorted[i].idx)
			}
		}
	}
}

func BenchmarkSortFunc(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	in := make([]string, 1024)
	for i := range in {
		in[i] = fmt.Sprint(r.Int())
	}

	for range b.N {
		h, _ := newRing(in...)
		h.SortFunc(byKey)
	}
}
