// Package twoopt implements the 2-opt move kernel for tour local search.
//
// A 2-opt move removes two edges of a tour and reconnects the two resulting
// paths by reversing the segment in between: cutting at positions (i, k)
// replaces edges (T[i-1],T[i]) and (T[k],T[k+1]) with (T[i-1],T[k]) and
// (T[i],T[k+1]). This package provides exactly the two operations an
// optimizer's inner loop needs, and nothing of the outer loop:
//
//   - SegmentReverse — apply the move: a fresh tour with T[i..k] reversed.
//   - SwapDelta — evaluate the move: the signed length change in O(1),
//     touching only the ≤2 boundary edges, never the whole tour.
//
// Supporting surface:
//
//   - In-place and Unchecked variants of both operations for validated hot
//     loops (checked by default; the fast path is an explicit opt-in).
//   - TourLength, CopyTour, ValidatePermutation — small tour utilities.
//   - EvalMoves / BestMove — candidate-set evaluation, optionally
//     data-parallel across independent (i, k) pairs.
//
// Design:
//   - Strict sentinel errors only (see types.go); no panics on user input.
//   - Pure functions over caller-owned inputs: tours are read-only, deltas
//     allocate nothing, reversal allocates exactly one output slice.
//   - Asymmetric matrices are supported: every edge is looked up in travel
//     order, so dist[a][b] and dist[b][a] are never conflated.
//   - Concurrency-safe by construction: any number of concurrent readers on
//     the same route/matrix, as long as no caller mutates them mid-flight.
//
// Tour model: an open path over cities 0..n-1. The caller passes kmax, the
// highest tour position whose successor edge may change (typically
// len(route)-1). A cut with i == 0 has no predecessor edge and a cut with
// k == kmax has no successor edge; SwapDelta omits the corresponding terms.
// Callers that model a closed cycle keep a fixed start city at both ends
// and probe interior cuts only, exactly as a closed-tour optimizer would.
//
// What this package deliberately does not do: pick which pairs to probe,
// decide acceptance, or iterate to convergence. Those are search strategy
// and belong to the caller.
package twoopt
