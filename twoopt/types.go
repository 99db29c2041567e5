// SPDX-License-Identifier: MIT
// Package twoopt: sentinel error set and shared value types.
// All operations return ONLY these sentinels on invalid input and tests
// match them via errors.Is. No function panics on user input.

package twoopt

import "errors"

var (
	// ErrIndexOutOfRange is returned when a cut position, kmax, or a city
	// value used to address the distance matrix falls outside valid bounds.
	ErrIndexOutOfRange = errors.New("twoopt: index out of range")

	// ErrInvalidRange is returned when the cut indices violate i ≤ k.
	ErrInvalidRange = errors.New("twoopt: invalid cut range (i > k)")

	// ErrNilMatrix indicates that a nil *dist.Dense was passed.
	ErrNilMatrix = errors.New("twoopt: nil distance matrix")

	// ErrBadPermutation is returned by ValidatePermutation when the input is
	// not a permutation of {0..n-1}.
	ErrBadPermutation = errors.New("twoopt: not a permutation of 0..n-1")
)

// Move is one candidate 2-opt cut (I, K) together with its evaluated length
// change. Delta follows the new-minus-old convention: negative means the
// reversal shortens the tour.
type Move struct {
	I, K  int
	Delta float64
}
