// SPDX-License-Identifier: MIT
// Package dist: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dist
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package dist

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dist: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested matrix order is invalid (n <= 0)
	// or when input rows do not form a square matrix.
	ErrBadShape = errors.New("dist: invalid shape")

	// ErrNonSquare signals that row lengths disagree with the matrix order.
	ErrNonSquare = errors.New("dist: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0..n-1].
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("dist: index out of range")

	// ErrNaNInf signals a NaN value where finite distances are required.
	// +Inf is accepted on ingestion ("no direct edge"); NaN never is.
	ErrNaNInf = errors.New("dist: NaN encountered")

	// ErrNegativeWeight signals a negative distance, which is forbidden
	// everywhere in this package.
	ErrNegativeWeight = errors.New("dist: negative weight")

	// ErrNonZeroDiagonal signals a diagonal entry that is not ~0 within the
	// validation tolerance.
	ErrNonZeroDiagonal = errors.New("dist: diagonal not zero within eps")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the validation tolerance.
	ErrAsymmetry = errors.New("dist: matrix is not symmetric within eps")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("dist: nil matrix")
)
