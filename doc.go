// Package tourkit is a compact toolkit for tour local search: the move
// primitives a TSP-style optimizer calls millions of times, packaged as
// small, allocation-conscious, dependency-light building blocks.
//
// 🚀 What is tourkit?
//
//	A library that isolates the inner loop of 2-opt local search:
//		• dist/   — dense distance matrices: construction, access, validation
//		• twoopt/ — the 2-opt move kernel: segment reversal, O(1) delta
//		            evaluation, and data-parallel candidate scanning
//
// ✨ Why choose tourkit?
//
//   - Checked by default – strict sentinel errors, never panics on user input
//   - Fast when you ask – explicit Unchecked variants for validated hot loops
//   - Pure Go – no cgo, no hidden deps
//   - Search-strategy agnostic – bring your own acceptance rule and loop
//
// The split mirrors how an optimizer consumes the pieces: build a dist.Dense
// once, then probe candidate (i, k) cuts with twoopt.SwapDelta and apply the
// winners with twoopt.SegmentReverse.
//
//	go get github.com/katalvlaran/tourkit
package tourkit
