// Package twoopt — segment reversal, the "apply" half of a 2-opt move.
//
// Contracts (checked variants):
//   - route non-empty; 0 ≤ i ≤ k ≤ len(route)-1.
//   - Violations surface as ErrIndexOutOfRange / ErrInvalidRange before any
//     allocation or mutation happens.
//
// Complexity:
//   - SegmentReverse: O(n) time, one O(n) allocation.
//   - SegmentReverseInPlace: O(k−i) time, O(1) space.
package twoopt

// validateSegment checks the cut-range invariant 0 ≤ i ≤ k ≤ length-1.
// Shared by reversal and delta evaluation so both fail identically.
//
// Complexity: O(1).
func validateSegment(length, i, k int) error {
	if length == 0 {
		return ErrIndexOutOfRange
	}
	if i > k {
		return ErrInvalidRange
	}
	if i < 0 || k > length-1 {
		return ErrIndexOutOfRange
	}

	return nil
}

// SegmentReverse returns a fresh tour equal to route except that the closed
// index range [i..k] is reversed: position i receives route[k], position i+1
// receives route[k-1], and so on. The input is never mutated.
//
// Edge behavior:
//   - i == k returns an independent copy equal to route.
//   - i == 0 && k == len(route)-1 returns the full reversal.
//
// Complexity: O(n) time, O(n) space.
func SegmentReverse(route []int, i, k int) ([]int, error) {
	if err := validateSegment(len(route), i, k); err != nil {
		return nil, err
	}

	out := make([]int, len(route))
	copy(out, route[:i])
	copy(out[k+1:], route[k+1:])

	// Reversed middle: out[i+t] = route[k-t] for t in [0..k-i].
	var p int
	for p = i; p <= k; p++ {
		out[p] = route[k-(p-i)]
	}

	return out, nil
}

// SegmentReverseInPlace reverses route[i..k] in place. Same validation as
// SegmentReverse; on error the route is untouched. This is the variant an
// optimizer uses once a move has been accepted, to avoid the copy.
//
// Complexity: O(k−i) time, O(1) space.
func SegmentReverseInPlace(route []int, i, k int) error {
	if err := validateSegment(len(route), i, k); err != nil {
		return err
	}
	SegmentReverseInPlaceUnchecked(route, i, k)

	return nil
}

// SegmentReverseUnchecked is the opt-in fast path of SegmentReverse: no
// validation, no error return. The caller MUST hold 0 ≤ i ≤ k ≤ len(route)-1;
// anything else panics or corrupts the output. Prefer the checked variant
// unless profiling shows the validation on the scan path.
//
// Complexity: O(n) time, O(n) space.
func SegmentReverseUnchecked(route []int, i, k int) []int {
	out := make([]int, len(route))
	copy(out, route[:i])
	copy(out[k+1:], route[k+1:])

	var p int
	for p = i; p <= k; p++ {
		out[p] = route[k-(p-i)]
	}

	return out
}

// SegmentReverseInPlaceUnchecked reverses route[i..k] in place without
// validation. Same caller obligations as SegmentReverseUnchecked.
//
// Complexity: O(k−i) time, O(1) space.
func SegmentReverseInPlaceUnchecked(route []int, i, k int) {
	for i < k {
		route[i], route[k] = route[k], route[i]
		i++
		k--
	}
}
