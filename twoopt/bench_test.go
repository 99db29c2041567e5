// Package twoopt_test — benchmarks for the 2-opt kernel.
//
// Policy:
//   - Deterministic geometry (rippled circle) and a fixed seed.
//   - Pre-build all inputs outside the timer; measure only the kernel.
//   - Instances sized to be fast on CI while exercising real cache behavior.
package twoopt_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourkit/dist"
	"github.com/katalvlaran/tourkit/twoopt"
)

// ripplePts builds n points on a slightly rippled circle: deterministic,
// tie-free, and metrically well-behaved.
func ripplePts(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// benchInstance builds the shared benchmark fixture outside any timer.
func benchInstance(b *testing.B, n int) (*dist.Dense, []int) {
	b.Helper()
	d, err := dist.FromCoords(ripplePts(n))
	if err != nil {
		b.Fatalf("FromCoords: %v", err)
	}
	route := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		route[i] = (i * 7) % n // fixed coprime shuffle, n chosen accordingly
	}

	return d, route
}

func BenchmarkSwapDelta_n256(b *testing.B) {
	const n = 256
	d, route := benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		delta, err := twoopt.SwapDelta(route, 17, 201, d, n-1)
		if err != nil {
			b.Fatalf("SwapDelta: %v", err)
		}
		sink += delta
	}
	_ = sink
}

func BenchmarkSwapDeltaUnchecked_n256(b *testing.B) {
	const n = 256
	d, route := benchInstance(b, n)
	w, order := twoopt.Prefetch(d)

	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += twoopt.SwapDeltaUnchecked(route, 17, 201, w, order, n-1)
	}
	_ = sink
}

func BenchmarkSegmentReverse_n256(b *testing.B) {
	const n = 256
	_, route := benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twoopt.SegmentReverse(route, 32, 224); err != nil {
			b.Fatalf("SegmentReverse: %v", err)
		}
	}
}

func BenchmarkSegmentReverseInPlace_n256(b *testing.B) {
	const n = 256
	_, route := benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Two reversals restore the route, keeping iterations comparable.
		if err := twoopt.SegmentReverseInPlace(route, 32, 224); err != nil {
			b.Fatalf("SegmentReverseInPlace: %v", err)
		}
		if err := twoopt.SegmentReverseInPlace(route, 32, 224); err != nil {
			b.Fatalf("SegmentReverseInPlace: %v", err)
		}
	}
}

func BenchmarkBestMove_n256_seq(b *testing.B) {
	const n = 256
	d, route := benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twoopt.BestMove(route, d, n-1, 1); err != nil {
			b.Fatalf("BestMove: %v", err)
		}
	}
}

func BenchmarkBestMove_n256_par8(b *testing.B) {
	const n = 256
	d, route := benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twoopt.BestMove(route, d, n-1, 8); err != nil {
			b.Fatalf("BestMove: %v", err)
		}
	}
}
