// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finder

// NotFound is returned by [SecondLargest] when the input holds fewer than two
// distinct values.
const NotFound = -1

// Result is the outcome of a scan. Value is meaningful only when Found is true.
type Result struct {
	Value int
	Found bool
}

// OrSentinel returns Value when a second-largest value was found and
// [NotFound] otherwise.
func (r Result) OrSentinel() int {
	if !r.Found {
		return NotFound
	}

	return r.Value
}

// slot is an optional integer.
type slot struct {
	value int
	set   bool
}

func (s slot) is(v int) bool {
	return s.set && s.value == v
}

// Find scans nums once and reports the second-largest distinct value.
// An empty slice, a single element or all-equal elements yield Found == false.
func Find(nums []int) Result {
	var largest, second slot

	for _, num := range nums {
		if largest.is(num) || second.is(num) {
			continue
		}

		switch {
		case !largest.set || num > largest.value:
			second = largest
			largest = slot{value: num, set: true}
		case num < largest.value && (!second.set || num > second.value):
			second = slot{value: num, set: true}
		}
	}

	return Result{Value: second.value, Found: second.set}
}

// SecondLargest returns the second-largest distinct value of nums, or
// [NotFound] if there is none. A legitimate -1 in the data is
// indistinguishable from the sentinel here; use [Find] when that matters.
func SecondLargest(nums []int) int {
	return Find(nums).OrSentinel()
}
