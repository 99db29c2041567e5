// Package dist provides dense pairwise-distance matrices for tour local
// search. Dense is a concrete, row-major implementation storing elements in
// a flat slice for performance and cache friendliness.
//
// Design:
//   - Square by construction: every constructor yields an n×n matrix.
//   - Bounds-checked accessors returning sentinel errors; no panics.
//   - Row exposes a borrowed row view for hot loops that already validated
//     their indices (the unchecked fast path lives in package twoopt).
package dist

import (
	"fmt"
	"math"
)

// Dense is a row-major n×n matrix of float64 distances.
// n is the matrix order and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // matrix order (rows == cols == n)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix order.
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At retrieves the distance from city row to city col.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns distance v from city row to city col.
// Rejects NaN (ErrNaNInf) and negative values (ErrNegativeWeight);
// +Inf is accepted and means "no direct edge".
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeWeight
	}
	m.data[idx] = v

	return nil
}

// Row returns a borrowed view of row i (length n). The slice aliases the
// matrix storage: callers must treat it as read-only and must not retain it
// across mutations. Returns nil if i is out of range.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		return nil
	}

	return m.data[i*m.n : (i+1)*m.n]
}

// Flat returns a borrowed row-major view of the full storage (length n*n).
// Same aliasing rules as Row. Used by prefetch-style hot paths.
// Complexity: O(1).
func (m *Dense) Flat() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Dense) String() string {
	var (
		s    string
		i, j int
	)
	for i = 0; i < m.n; i++ {
		s += "["
		for j = 0; j < m.n; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
			if j < m.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
