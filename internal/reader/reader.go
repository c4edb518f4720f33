// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reader parses the program input: an element count n followed by n
// whitespace-separated integers.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Sequence is the parsed list of integers in input order.
type Sequence []int

// MaxTokenSize is the longest token Read accepts. Longer tokens are reported
// as malformed. Leading zeros count towards the limit.
const MaxTokenSize = 1 << 20

const initialBufferSize = 64 * 1024

// Read consumes a count and then exactly that many integers from r.
// Tokens may be separated by any whitespace, including newlines. Tokens after
// the last declared element are ignored. Read buffers ahead, so r may be
// consumed past the last declared element.
//
// Parsing failures, including tokens longer than [MaxTokenSize], wrap
// [ErrMalformedInput]; failures of r itself are returned wrapped as-is.
func Read(r io.Reader) (Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: token longer than %d bytes", ErrInvalidCount, MaxTokenSize)
		} else if err != nil {
			return nil, fmt.Errorf("error reading element count: %w", err)
		}
		return nil, ErrMissingCount
	}

	n, err := strconv.Atoi(scanner.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCount, scanner.Text())
	}

	// n is untrusted, don't preallocate all of it
	seq := make(Sequence, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
				return nil, fmt.Errorf("%w at index %d: token longer than %d bytes", ErrInvalidToken, i, MaxTokenSize)
			} else if err != nil {
				return nil, fmt.Errorf("error reading element %d: %w", i, err)
			}
			return nil, fmt.Errorf("%w: declared %d, got %d", ErrCountMismatch, n, i)
		}

		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %q", ErrInvalidToken, i, scanner.Text())
		}
		seq = append(seq, v)
	}

	return seq, nil
}
