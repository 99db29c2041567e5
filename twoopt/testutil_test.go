// Package twoopt_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality from focused test files.
package twoopt_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourkit/dist"
	"github.com/katalvlaran/tourkit/twoopt"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// tolCross is the tolerance for delta-vs-full-length cross checks.
	// TourLength stabilizes to 1e-9, so two stabilized lengths compared
	// against a raw delta can disagree by a couple of ulps beyond that.
	tolCross = 1e-8

	// seedDet is the deterministic seed for all randomized instances.
	seedDet = int64(42)

	// sideUnit is the side of the unit square used by geometric fixtures.
	sideUnit = 1.0
)

// euclid builds a symmetric Euclidean distance matrix from 2D points,
// failing the test on construction errors.
func euclid(t testing.TB, pts [][2]float64) *dist.Dense {
	t.Helper()
	m, err := dist.FromCoords(pts)
	if err != nil {
		t.Fatalf("FromCoords: %v", err)
	}

	return m
}

// asym builds an asymmetric matrix from explicit rows, failing on error.
func asym(t testing.TB, rows [][]float64) *dist.Dense {
	t.Helper()
	m, err := dist.FromMatrix(rows)
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}

	return m
}

// squarePts is the canonical 4-city fixture: corners of the unit square.
// Route [0 2 1 3] crosses itself; reversing [1..2] uncrosses it.
func squarePts() [][2]float64 {
	return [][2]float64{{0, 0}, {sideUnit, 0}, {sideUnit, sideUnit}, {0, sideUnit}}
}

// randInstance returns n random points in the unit square and a random
// permutation route over them, both driven by the shared deterministic seed
// stream rng.
func randInstance(t testing.TB, rng *rand.Rand, n int) (*dist.Dense, []int) {
	t.Helper()
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	route := rng.Perm(n)

	return euclid(t, pts), route
}

// bruteDelta computes the ground-truth length change of reversing [i..k]
// the slow way: materialize the new tour and subtract full lengths.
func bruteDelta(t testing.TB, route []int, i, k int, d *dist.Dense) float64 {
	t.Helper()
	rev, err := twoopt.SegmentReverse(route, i, k)
	if err != nil {
		t.Fatalf("SegmentReverse(%d,%d): %v", i, k, err)
	}
	before, err := twoopt.TourLength(route, d)
	if err != nil {
		t.Fatalf("TourLength(before): %v", err)
	}
	after, err := twoopt.TourLength(rev, d)
	if err != nil {
		t.Fatalf("TourLength(after): %v", err)
	}

	return after - before
}

// mustFloatClose fails the test when |got-want| exceeds tol.
func mustFloatClose(t testing.TB, got, want, tol float64, ctx string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %.12f, want %.12f (tol %g)", ctx, got, want, tol)
	}
}
