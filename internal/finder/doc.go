// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package finder locates the second-largest distinct value in a sequence of
// integers with a single forward pass and constant extra space.
//
// Duplicates are collapsed: for [10, 10, 9] the answer is 9, not 10.
//
// Two entry points are provided:
//   - [SecondLargest] keeps the classic contract and returns [NotFound] (-1)
//     when fewer than two distinct values exist;
//   - [Find] returns a [Result] whose Found flag distinguishes a genuine -1
//     in the data from the sentinel.
package finder
