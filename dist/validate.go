// Package dist — structural validation for distance matrices.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n²) worst-case; no hidden allocations.
package dist

import "math"

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from any acceptance epsilon used by local search.
const symTol = 1e-12

// Validate performs full structural validation of the matrix:
//   - diagonal ≈ 0 (|a_ii| ≤ 1e-12), finite,
//   - no negative entries,
//   - NaN anywhere is invalid,
//   - if symmetric==true: |a_ij − a_ji| ≤ 1e-12 for all i<j.
//
// +Inf off-diagonal entries are allowed ("no direct edge"); whether a
// consumer tolerates them is the consumer's policy.
//
// Complexity: O(n²).
func (m *Dense) Validate(symmetric bool) error {
	if m == nil {
		return ErrNilMatrix
	}

	var (
		n        = m.n
		i, j     int
		aij, aji float64
		abs      float64
	)

	// Diagonal: a_ii ≈ 0 within tolerance, finite.
	for i = 0; i < n; i++ {
		aij = m.data[i*n+i]
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return ErrNaNInf
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > symTol {
			return ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij = m.data[i*n+j]
			if math.IsNaN(aij) {
				return ErrNaNInf
			}
			if aij < 0 {
				return ErrNegativeWeight
			}
		}
	}

	// Symmetry (if required): compare the upper triangle against its mirror.
	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij = m.data[i*n+j]
				aji = m.data[j*n+i]
				if math.IsInf(aij, 0) && math.IsInf(aji, 0) {
					continue // both missing is symmetric enough
				}
				abs = aij - aji
				if abs < 0 {
					abs = -abs
				}
				if abs > symTol {
					return ErrAsymmetry
				}
			}
		}
	}

	return nil
}
