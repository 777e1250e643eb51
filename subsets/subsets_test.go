package subsets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcomp/subsets"
)

// collect drains the sequence into a slice of subsets.
func collect[E comparable](set []E) [][]E {
	var out [][]E
	for s := range subsets.Increasing(set) {
		out = append(out, s)
	}
	return out
}

func TestIncreasing_Empty(t *testing.T) {
	assert.Empty(t, collect([]int{}))
	assert.Empty(t, collect[string](nil))
}

func TestIncreasing_Single(t *testing.T) {
	got := collect([]string{"a"})
	assert.Equal(t, [][]string{{"a"}}, got)
}

func TestIncreasing_ThreeElements_OrderAndCount(t *testing.T) {
	got := collect([]int{1, 2, 3})
	want := [][]int{
		{1}, {2}, {3},
		{1, 2}, {1, 3}, {2, 3},
		{1, 2, 3},
	}
	assert.Equal(t, want, got)
}

func TestIncreasing_SizesAscend(t *testing.T) {
	prev := 0
	for s := range subsets.Increasing([]int{1, 2, 3, 4, 5}) {
		require.NotEmpty(t, s, "empty subset must never be yielded")
		require.GreaterOrEqual(t, len(s), prev, "sizes must be non-decreasing")
		prev = len(s)
	}
}

func TestIncreasing_CountIsPowersetMinusOne(t *testing.T) {
	for n := 0; n <= 8; n++ {
		set := make([]int, n)
		for i := range set {
			set[i] = i
		}
		assert.Len(t, collect(set), (1<<n)-1, "n=%d", n)
	}
}

func TestIncreasing_DuplicatesCollapse(t *testing.T) {
	// [a, a, b] holds two distinct values; subsets are those of [a, b].
	got := collect([]string{"a", "a", "b"})
	want := [][]string{{"a"}, {"b"}, {"a", "b"}}
	assert.Equal(t, want, got)
}

func TestIncreasing_Restartable(t *testing.T) {
	seq := subsets.Increasing([]int{7, 8, 9})
	var first, second [][]int
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal(t, first, second)
}

func TestIncreasing_EarlyBreak(t *testing.T) {
	seq := subsets.Increasing([]int{1, 2, 3, 4})
	var got [][]int
	for s := range seq {
		got = append(got, s)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, [][]int{{1}, {2}, {3}}, got)
}

func TestIncreasing_YieldedSlicesAreFresh(t *testing.T) {
	var all [][]int
	for s := range subsets.Increasing([]int{1, 2, 3}) {
		all = append(all, s)
	}
	// Mutating one retained subset must not corrupt the others.
	all[0][0] = 99
	assert.Equal(t, []int{2}, all[1])
	assert.Equal(t, []int{1, 2}, all[3])
}

func TestIncreasing_SourceMutationAfterBuild(t *testing.T) {
	set := []int{1, 2}
	seq := subsets.Increasing(set)
	set[0] = 42 // must not leak into the sequence
	assert.Equal(t, [][]int{{1}, {2}, {1, 2}}, func() [][]int {
		var out [][]int
		for s := range seq {
			out = append(out, s)
		}
		return out
	}())
}
