// Package twoopt — candidate-set evaluation over the 2-opt neighborhood.
//
// Both helpers stop at evaluation and reduction: they never apply a move,
// never decide acceptance, and never iterate. An optimizer layers its own
// policy (first-improvement, best-improvement, annealing, ...) on top.
//
// Design:
//   - One upfront validation pass, then the unchecked O(1) delta on every
//     candidate; the scan itself allocates nothing per candidate.
//   - Parallel scans share route and matrix read-only and partition i-rows
//     across workers with a stride, so results are identical to the
//     sequential scan, including tie-breaks.
package twoopt

import (
	"sync"

	"github.com/katalvlaran/tourkit/dist"
)

// validateScanInputs runs the shared upfront checks for scan helpers:
// non-nil matrix, non-empty route, kmax within [0..len(route)-1], and every
// city in route[0..kmax] addressable in d. After it succeeds, the unchecked
// delta is safe for any 0 ≤ i ≤ k ≤ kmax.
//
// Complexity: O(kmax) time.
func validateScanInputs(route []int, d *dist.Dense, kmax int) error {
	if d == nil {
		return ErrNilMatrix
	}
	if len(route) == 0 {
		return ErrIndexOutOfRange
	}
	if kmax < 0 || kmax > len(route)-1 {
		return ErrIndexOutOfRange
	}

	var (
		n = d.N()
		p int
		v int
	)
	for p = 0; p <= kmax; p++ {
		v = route[p]
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
	}

	return nil
}

// better reports whether a beats b: strictly smaller delta wins, exact ties
// resolve to the lexicographically smallest (I, K). This keeps every scan —
// sequential or parallel — fully deterministic.
func better(a, b Move) bool {
	if a.Delta != b.Delta {
		return a.Delta < b.Delta
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.K < b.K
}

// EvalMoves evaluates the given candidate cuts in place, filling each
// Move's Delta. Candidates keep their order; I and K are never modified.
// Any candidate violating 0 ≤ I ≤ K ≤ kmax fails the whole call before
// any Delta is written.
//
// Complexity: O(kmax + len(cands)) time, zero allocations.
func EvalMoves(route []int, d *dist.Dense, kmax int, cands []Move) error {
	if err := validateScanInputs(route, d, kmax); err != nil {
		return err
	}

	// Validate all candidates first so the fill is all-or-nothing.
	var c int
	for c = 0; c < len(cands); c++ {
		if cands[c].I > cands[c].K {
			return ErrInvalidRange
		}
		if cands[c].I < 0 || cands[c].K > kmax {
			return ErrIndexOutOfRange
		}
	}

	w, n := Prefetch(d)
	for c = 0; c < len(cands); c++ {
		cands[c].Delta = SwapDeltaUnchecked(route, cands[c].I, cands[c].K, w, n, kmax)
	}

	return nil
}

// BestMove evaluates every candidate cut 0 ≤ i < k ≤ kmax and returns the
// move with the smallest delta (ties to the smallest (i, k)). A negative
// Delta on the result means the neighborhood contains an improving move;
// whether to apply it is the caller's policy. When kmax == 0 the
// neighborhood is empty and the zero Move (a no-op with Delta 0) is
// returned.
//
// workers ≤ 1 scans sequentially. Larger values partition the i-rows across
// that many goroutines; candidates are independent and all shared state is
// read-only, so the parallel result is identical to the sequential one.
//
// Complexity: O(kmax²) total delta evaluations, O(workers) extra space.
func BestMove(route []int, d *dist.Dense, kmax, workers int) (Move, error) {
	if err := validateScanInputs(route, d, kmax); err != nil {
		return Move{}, err
	}

	w, n := Prefetch(d)
	if workers <= 1 || kmax < 2 {
		return scanRows(route, w, n, kmax, 0, 1), nil
	}
	if workers > kmax {
		workers = kmax // at most one worker per i-row
	}

	// Fan out: worker g owns i-rows g, g+workers, g+2*workers, ...
	// The stride balances work since row i carries kmax−i candidates.
	var (
		wg     sync.WaitGroup
		locals = make([]Move, workers)
		g      int
	)
	wg.Add(workers)
	for g = 0; g < workers; g++ {
		go func(g int) {
			defer wg.Done()
			locals[g] = scanRows(route, w, n, kmax, g, workers)
		}(g)
	}
	wg.Wait()

	// Reduce with the same comparator the workers used.
	best := locals[0]
	for g = 1; g < workers; g++ {
		if better(locals[g], best) {
			best = locals[g]
		}
	}

	return best, nil
}

// scanRows scans i-rows first, first+stride, first+2*stride, ... up to
// kmax−1, evaluating every cut (i, k) with i < k ≤ kmax, and returns the
// best move seen. Inputs are pre-validated by the caller.
//
// Complexity: O(kmax²/stride) delta evaluations, O(1) space.
func scanRows(route []int, w []float64, n, kmax, first, stride int) Move {
	var (
		best  Move // zero Move until the first candidate lands
		cand  Move
		found bool
		i, k  int
	)
	for i = first; i < kmax; i += stride {
		for k = i + 1; k <= kmax; k++ {
			cand = Move{I: i, K: k, Delta: SwapDeltaUnchecked(route, i, k, w, n, kmax)}
			if !found || better(cand, best) {
				best = cand
				found = true
			}
		}
	}

	return best
}
