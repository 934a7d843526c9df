// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

// This file defines a simple spell checker for use in resolver errors
// ("undeclared private name #colour; did you mean #color?").

import (
	"strings"
	"unicode"
)

// nearest returns the element of candidates nearest to x using the
// Levenshtein metric, or "" if none is close enough.
func nearest(x string, candidates []string) string {
	// Identifiers differ in case and in '_' and '$' more often than not.
	fold := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == '_' || r == '$' {
				return -1
			}
			return unicode.ToLower(r)
		}, s)
	}

	x = fold(x)

	var best string
	bestD := (len(x) + 1) / 2 // allow up to 50% typos
	for _, c := range candidates {
		d := levenshtein(x, fold(c), bestD)
		if d < bestD {
			bestD = d
			best = c
		}
	}
	return best
}

// levenshtein returns the non-negative Levenshtein edit distance
// between the byte strings x and y.
//
// If the computed distance exceeds limit,
// the function may return early with an approximate value > limit.
func levenshtein(x, y string, limit int) int {
	// Single-row formulation; x is the shorter string.
	if len(x) > len(y) {
		x, y = y, x
	}

	// Remove common prefix.
	for i := 0; i < len(x); i++ {
		if x[i] != y[i] {
			x = x[i:]
			y = y[i:]
			break
		}
	}
	if x == y[:min(len(x), len(y))] {
		return len(y) - len(x)
	}

	row := make([]int, len(y)+1)
	for i := range row {
		row[i] = i
	}

	for i := 1; i <= len(x); i++ {
		row[0] = i
		best := i
		prev := i - 1
		for j := 1; j <= len(y); j++ {
			sub := prev
			if x[i-1] != y[j-1] {
				sub++
			}
			k := min(sub, 1+row[j-1], 1+row[j])
			prev, row[j] = row[j], k
			best = min(best, k)
		}
		if best > limit {
			return best
		}
	}
	return row[len(y)]
}
