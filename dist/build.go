// Package dist — constructors that ingest caller-side representations.
//
// Design:
//   - Copy-in semantics: the returned Dense never aliases caller memory.
//   - Strict validation on ingestion (shape, NaN, negativity); geometric
//     builders produce matrices that pass Validate by construction.
package dist

import "math"

// FromMatrix builds a Dense from a [][]float64, validating shape and values.
//
// Contract:
//   - rows must be non-empty and square (len(rows[i]) == len(rows) for all i).
//   - NaN entries ⇒ ErrNaNInf; negative entries ⇒ ErrNegativeWeight.
//   - +Inf is accepted ("no direct edge").
//
// Complexity: O(n²) time and memory.
func FromMatrix(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}

	m := &Dense{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) {
				return nil, ErrNaNInf
			}
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// FromCoords builds the symmetric Euclidean distance matrix of 2D points:
// entry (i,j) is the straight-line distance between pts[i] and pts[j],
// with a zero diagonal. The result always passes Validate(true).
//
// Complexity: O(n²) time and memory.
func FromCoords(pts [][2]float64) (*Dense, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrBadShape
	}

	var (
		i, j   int
		dx, dy float64
		w      float64
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(pts[i][0]) || math.IsNaN(pts[i][1]) ||
			math.IsInf(pts[i][0], 0) || math.IsInf(pts[i][1], 0) {
			return nil, ErrNaNInf
		}
	}

	m := &Dense{n: n, data: make([]float64, n*n)}

	// Fill the upper triangle and mirror; the diagonal stays zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			w = math.Hypot(dx, dy)
			m.data[i*n+j] = w
			m.data[j*n+i] = w
		}
	}

	return m, nil
}
