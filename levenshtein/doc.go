// Package levenshtein computes infix (local) Levenshtein alignments between
// a query sequence and a target sequence, with replayable backtraces.
//
// 🚀 What is infix Levenshtein?
//
//	Classic Levenshtein distance charges for every insertion, deletion
//	and replacement over the full length of both strings.  The infix
//	variant instead searches for the query *inside* the target: deleting
//	a prefix or a suffix of the target is free, while the query must be
//	consumed in full.  For query "ACT" and target "CGACTGAC" the infix
//	distance is 0 — dropping "CG" and "GAC" from the target costs
//	nothing.  It's widely used in:
//	  • Fuzzy substring search over large corpora
//	  • Keyword spotting in ASR transcripts
//	  • Read-to-reference matching in sequence analysis
//
// ✨ Key features:
//
//   - rolling-row DP: O(len(query)) cells live at any moment
//   - every end position achieving the minimum cost is reported,
//     in ascending target order
//   - deterministic tie-break policy (delete > insert > replace)
//   - persistent bit-packed backtrace per result (bittrace.Trace),
//     forked in O(1) on every DP transition
//   - Steps replays a backtrace into the concrete alignment path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/levenshtein"
//
//	dist, matches, err := levenshtein.Distance(
//	    []byte("ACT"), []byte("CGACTGAC"), nil)
//	if err != nil {
//	    // handle ErrEmptyTarget / ErrNegativeCost
//	}
//	for _, m := range matches {
//	    steps, _ := levenshtein.Steps(m, []byte("ACT"), []byte("CGACTGAC"))
//	    _ = steps // replayed edit operations, oldest first
//	}
//
// Performance:
//
//   - Time:   O(len(query) · len(target))
//   - Memory: O(len(query)) for the sweep, plus one 16-byte segment
//     allocation per 64 recorded edit events per surviving path
//
// See example_test.go for worked scenarios.
package levenshtein
