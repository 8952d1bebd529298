package levenshtein

// Distance — infix Levenshtein alignment
//
// Description:
//
//	Distance computes the minimum edit cost of aligning the whole query
//	against any contiguous region of the target: gaps before and after
//	the matched region are free.  Alongside the distance it reports every
//	target end position that achieves it, each with a replayable
//	backtrace of the edit decisions on its path.
//
// Algorithm Outline (rolling row):
//  1. Let n = len(query). Keep one row of n+1 DP cells; row[k] is the
//     best alignment of query[:k] ending at the current target position.
//  2. Initialize:
//     row[0] = 0
//     row[k] = row[k-1] + InsertCost for k=1..n
//  3. For j = 1..len(target):
//     row[0] = 0  (starting a new candidate alignment here is free)
//     For k = 1..n, with prevDiag the pre-update row[k-1]:
//     equal   → take prevDiag, no cost
//     delete  → row[k]   + DeleteCost   (previous row, same column)
//     insert  → row[k-1] + InsertCost   (same row, previous column)
//     replace → prevDiag + ReplaceCost
//     On a mismatch the three candidates tie-break in the fixed order
//     delete > insert > replace (each wins when its source cost is ≤
//     both rivals), keeping the reported paths deterministic.
//  4. After each column, row[n] is a candidate match ending at j-1:
//     strictly cheaper than the best so far → drop all recorded matches;
//     equal to the best → record it. Matches therefore come out in
//     ascending Position order.
//
// Complexity:
//
//	Time   = O(len(query) · len(target))
//	Memory = O(len(query)) cells; each DP transition forks its parent's
//	         backtrace in O(1) via bittrace value copy.
//
// Errors:
//   - ErrEmptyTarget  — the target sequence is empty.
//   - ErrNegativeCost — a cost weight is negative.

// Distance computes the infix Levenshtein distance between query and
// target. Returns (distance, matches, error); matches holds every target
// end position achieving the distance, in ascending Position order.
//
// A nil opts uses DefaultOptions (unit costs). An empty query aligns
// trivially: distance 0 with no recorded matches. An empty target is a
// contract violation and returns ErrEmptyTarget.
//
// Example:
//
//	dist, matches, err := Distance([]byte("ACT"), []byte("CGACTGAC"), nil)
func Distance[T comparable](query, target []T, opts *Options) (int, []Alignment, error) {
	// 1) Resolve and validate options.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.InsertCost < 0 || cfg.DeleteCost < 0 || cfg.ReplaceCost < 0 {
		return 0, nil, ErrNegativeCost
	}

	// 2) Validate the target precondition.
	if len(target) == 0 {
		return 0, nil, ErrEmptyTarget
	}

	// 3) Degenerate success: nothing to align, no position distinguished.
	if len(query) == 0 {
		return 0, nil, nil
	}

	// 4) First row: aligning query[:k] against zero target symbols takes
	//    k insertions.
	n := len(query)
	row := make([]element, n+1)
	for k := 1; k <= n; k++ {
		row[k] = row[k-1].ins(cfg.InsertCost)
	}

	// 5) Sweep the target left to right, one column per symbol.
	best := -1
	var matches []Alignment
	for j := 1; j <= len(target); j++ {
		// prevDiag is the cell diagonally above-left of row[k] before this
		// column overwrites it. Restarting an alignment at column j is
		// free — infix semantics.
		prevDiag := row[0]
		row[0] = element{}

		for k := 1; k <= n; k++ {
			diag := row[k] // becomes prevDiag for k+1
			switch {
			case query[k-1] == target[j-1]:
				row[k] = prevDiag.eq()
			case row[k].cost <= row[k-1].cost && row[k].cost <= prevDiag.cost:
				row[k] = row[k].del(cfg.DeleteCost)
			case row[k-1].cost <= row[k].cost && row[k-1].cost <= prevDiag.cost:
				row[k] = row[k-1].ins(cfg.InsertCost)
			default:
				row[k] = prevDiag.rep(cfg.ReplaceCost)
			}
			prevDiag = diag
		}

		// 6) row[n] is the candidate match ending at target index j-1.
		tail := row[n]
		if best < 0 || tail.cost <= best {
			if best >= 0 && tail.cost < best {
				matches = matches[:0] // a strictly better cost voids earlier ties
			}
			best = tail.cost
			matches = append(matches, Alignment{
				Cost:     tail.cost,
				Position: j - 1,
				Trace:    tail.trace,
			})
		}
	}

	return best, matches, nil
}
