// Package twoopt — small tour utilities shared by the kernel and its tests.
//
// Design:
//   - Deterministic, side-effect free; only sentinel errors from types.go.
//   - O(n) time for every helper; no hidden allocations beyond outputs.
package twoopt

import (
	"math"

	"github.com/katalvlaran/tourkit/dist"
)

// roundScale controls length stabilization precision (1e-9). It keeps full
// tour lengths stable across platforms without affecting which moves win.
const roundScale = 1e9

// ValidatePermutation checks that route is a permutation of {0..n-1} of
// length n. It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(route []int, n int) error {
	if n <= 0 || len(route) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return ErrBadPermutation
		}
		if seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(route []int) []int {
	if route == nil {
		return nil
	}
	out := make([]int, len(route))
	copy(out, route)

	return out
}

// TourLength sums the open-path length of route: the costs of the
// consecutive edges route[p] → route[p+1] for p in [0..len(route)-2].
// A single-city route has length 0. The result is stabilized to 1e-9.
//
// This is the O(n) baseline that SwapDelta avoids; tests use it to
// cross-check deltas and optimizers use it once per run, not per candidate.
//
// Contract: every city value must be addressable in d (ErrIndexOutOfRange).
//
// Complexity: O(n) time, O(1) space.
func TourLength(route []int, d *dist.Dense) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if len(route) == 0 {
		return 0, ErrIndexOutOfRange
	}

	var (
		n   = d.N()
		sum float64
		p   int
		u   int
		v   int
	)
	if route[0] < 0 || route[0] >= n {
		return 0, ErrIndexOutOfRange
	}
	for p = 0; p < len(route)-1; p++ {
		u = route[p]
		v = route[p+1]
		if v < 0 || v >= n {
			return 0, ErrIndexOutOfRange
		}
		sum += d.Row(u)[v]
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
