// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finder

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedOracle computes the expected answer the slow way: sort the distinct
// values and take the one before the maximum.
func sortedOracle(nums []int) Result {
	distinct := slices.Clone(nums)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) < 2 {
		return Result{}
	}

	return Result{Value: distinct[len(distinct)-2], Found: true}
}

func randomSequence(r *rand.Rand) []int {
	n := r.IntN(12)
	nums := make([]int, n)
	for i := range nums {
		// narrow range so duplicates are common
		nums[i] = r.IntN(9) - 4
	}

	return nums
}

// ── SecondLargest ────────────────────────────────────────────────────────────

func TestSecondLargest(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected int
	}{
		{name: "nil slice", input: nil, expected: NotFound},
		{name: "empty", input: []int{}, expected: NotFound},
		{name: "single element", input: []int{5}, expected: NotFound},
		{name: "all equal", input: []int{5, 5, 5}, expected: NotFound},
		{name: "ascending", input: []int{1, 2, 3, 4, 5}, expected: 4},
		{name: "descending", input: []int{5, 4, 3, 2, 1}, expected: 4},
		{name: "duplicate maximum", input: []int{10, 10, 9}, expected: 9},
		{name: "all negative", input: []int{-3, -1, -7}, expected: -3},
		{name: "duplicate second", input: []int{3, 7, 3, 7, 3}, expected: 3},
		{name: "second arrives after largest", input: []int{9, 1, 8}, expected: 8},
		{name: "zero and positive", input: []int{0, 1}, expected: 0},
		{name: "extreme ints", input: []int{minInt, maxInt}, expected: minInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SecondLargest(tt.input))
		})
	}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// TestSecondLargest_SentinelCollision documents that a real -1 is reported
// exactly like the sentinel.
func TestSecondLargest_SentinelCollision(t *testing.T) {
	assert.Equal(t, NotFound, SecondLargest([]int{-1, 0}))
	assert.Equal(t, NotFound, SecondLargest([]int{0}))
}

func TestSecondLargest_DoesNotMutateInput(t *testing.T) {
	input := []int{4, 1, 4, 3}
	snapshot := slices.Clone(input)

	SecondLargest(input)

	assert.Equal(t, snapshot, input)
}

// ── Find ─────────────────────────────────────────────────────────────────────

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected Result
	}{
		{name: "empty", input: nil, expected: Result{}},
		{name: "single", input: []int{-1}, expected: Result{}},
		{name: "all equal", input: []int{2, 2}, expected: Result{}},
		{name: "minus one is a real value", input: []int{-1, 0}, expected: Result{Value: -1, Found: true}},
		{name: "mixed", input: []int{10, 10, 9}, expected: Result{Value: 9, Found: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Find(tt.input))
		})
	}
}

func TestResult_OrSentinel(t *testing.T) {
	assert.Equal(t, NotFound, Result{}.OrSentinel())
	assert.Equal(t, NotFound, Result{Value: 42}.OrSentinel())
	assert.Equal(t, 42, Result{Value: 42, Found: true}.OrSentinel())
}

// ── properties ───────────────────────────────────────────────────────────────

func TestFind_MatchesSortedOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 2000; i++ {
		nums := randomSequence(r)
		require.Equal(t, sortedOracle(nums), Find(nums), "input %v", nums)
	}
}

func TestFind_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		nums := randomSequence(r)
		want := Find(nums)

		shuffled := slices.Clone(nums)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		require.Equal(t, want, Find(shuffled), "input %v shuffled %v", nums, shuffled)
	}
}

func TestFind_Idempotent(t *testing.T) {
	nums := []int{7, 3, 7, 5, -2}

	first := Find(nums)
	second := Find(nums)

	assert.Equal(t, first, second)
	assert.Equal(t, Result{Value: 5, Found: true}, first)
}

func TestFind_FewerThanTwoDistinctIsNotFound(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 200; i++ {
		v := r.IntN(100) - 50
		nums := slices.Repeat([]int{v}, r.IntN(6))

		res := Find(nums)
		require.False(t, res.Found, "input %v", nums)
		require.Equal(t, NotFound, res.OrSentinel())
	}
}
