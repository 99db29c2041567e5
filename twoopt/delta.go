// Package twoopt — delta evaluation, the "evaluate" half of a 2-opt move.
//
// Reversing route[i..k] can change at most two edges of an open tour:
//
//	removed: (route[i-1] → route[i])   added: (route[i-1] → route[k])
//	removed: (route[k]   → route[k+1]) added: (route[i]   → route[k+1])
//
// The leading pair exists only when i > 0, the trailing pair only when
// k < kmax. Edges strictly inside the segment connect the same city pairs
// in opposite travel order, so their total cost is unchanged whenever the
// matrix is symmetric; the boundary terms are then the exact length change.
// For asymmetric matrices every boundary lookup still follows travel order,
// but the flipped interior arcs are intentionally not charged: that keeps
// evaluation O(1) regardless of tour size, which is what makes exhaustive
// neighborhood scans tractable. Asymmetric callers wanting exact deltas
// recompute with TourLength on accepted moves or use a tail-swap move that
// avoids reversal altogether.
//
// Contracts:
//   - 0 ≤ i ≤ k ≤ kmax ≤ len(route)-1; d addressable at every touched city.
//   - Violations surface as ErrInvalidRange / ErrIndexOutOfRange; no other
//     failure modes, no allocation, no mutation.
package twoopt

import "github.com/katalvlaran/tourkit/dist"

// SwapDelta returns the signed change in tour length (new − old) that
// SegmentReverse(route, i, k) would cause. Negative means the move shortens
// the tour. kmax is the highest tour position whose successor edge may
// change; a cut with k == kmax has no trailing terms, a cut with i == 0 has
// no leading terms, and both at once yields exactly 0.
//
// Complexity: O(1) time, zero allocations.
func SwapDelta(route []int, i, k int, d *dist.Dense, kmax int) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if err := validateSegment(len(route), i, k); err != nil {
		return 0, err
	}
	if kmax < k || kmax > len(route)-1 {
		return 0, ErrIndexOutOfRange
	}

	var (
		n       = d.N()
		removed float64
		added   float64
	)

	if i > 0 {
		// Leading boundary: edge into the segment changes its head city.
		a := route[i-1] // city before the cut
		b := route[i]   // old segment start
		c := route[k]   // new segment start after reversal
		if a < 0 || a >= n || b < 0 || b >= n || c < 0 || c >= n {
			return 0, ErrIndexOutOfRange
		}
		row := d.Row(a)
		removed += row[b]
		added += row[c]
	}

	if k < kmax {
		// Trailing boundary: edge out of the segment changes its tail city.
		c := route[k]   // old segment end
		e := route[k+1] // city after the cut
		b := route[i]   // new segment end after reversal
		if c < 0 || c >= n || e < 0 || e >= n || b < 0 || b >= n {
			return 0, ErrIndexOutOfRange
		}
		removed += d.Row(c)[e]
		added += d.Row(b)[e]
	}

	return added - removed, nil
}

// Prefetch returns the flat row-major weight buffer and order of d for use
// with SwapDeltaUnchecked. The buffer aliases the matrix storage; treat it
// as read-only for the lifetime of the scan.
//
// Complexity: O(1).
func Prefetch(d *dist.Dense) ([]float64, int) {
	return d.Flat(), d.N()
}

// SwapDeltaUnchecked is the opt-in fast path of SwapDelta over a prefetched
// flat buffer w (row-major, order n, typically from Prefetch). No
// validation, no error return: the caller MUST hold the full SwapDelta
// contract, including city values within [0..n-1]. Prefer the checked
// variant unless the scan loop has already validated route and matrix once.
//
// Complexity: O(1) time, zero allocations.
func SwapDeltaUnchecked(route []int, i, k int, w []float64, n, kmax int) float64 {
	var removed, added float64

	if i > 0 {
		a := route[i-1]
		removed += w[a*n+route[i]]
		added += w[a*n+route[k]]
	}
	if k < kmax {
		e := route[k+1]
		removed += w[route[k]*n+e]
		added += w[route[i]*n+e]
	}

	return added - removed
}
